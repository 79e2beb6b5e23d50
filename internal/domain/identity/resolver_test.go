package identity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/barstock-api/internal/domain/identity"
)

// Caso 1: sin id externo se acuña un UUID nuevo y distinto en cada llamada.
func TestResolve_SinID_AcuñaUUIDNuevo(t *testing.T) {
	a := identity.Resolve("")
	b := identity.Resolve("")

	_, err := uuid.Parse(a)
	require.NoError(t, err, "la clave acuñada debe ser un UUID válido")
	assert.NotEqual(t, a, b, "cada alta sin id debe recibir una clave distinta")
}

// Caso 2: un id con forma de UUID se normaliza a su representación canónica,
// de modo que variantes sintácticas del mismo UUID colisionen en la misma entidad.
func TestResolve_UUID_Normaliza(t *testing.T) {
	canonical := "0d9f2f0a-1b2c-4d5e-8f90-a1b2c3d4e5f6"

	assert.Equal(t, canonical, identity.Resolve(canonical))
	assert.Equal(t, canonical, identity.Resolve("0D9F2F0A-1B2C-4D5E-8F90-A1B2C3D4E5F6"),
		"mayúsculas y minúsculas deben resolver a la misma clave")
}

// Caso 3: un id heredado que no es UUID se usa tal cual.
func TestResolve_IDHeredado_SeUsaVerbatim(t *testing.T) {
	assert.Equal(t, "item-legacy-001", identity.Resolve("item-legacy-001"))
}

// Caso 4: Resolve es determinista para toda entrada no vacía; reenviar el
// mismo payload nunca puede crear una segunda entidad.
func TestResolve_Determinista(t *testing.T) {
	for _, id := range []string{"item-legacy-001", "0d9f2f0a-1b2c-4d5e-8f90-a1b2c3d4e5f6", "ñandú 🍻"} {
		assert.Equal(t, identity.Resolve(id), identity.Resolve(id), "id: %s", id)
	}
}
