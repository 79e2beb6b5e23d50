// Package identity resuelve el esquema de identidad dual externo/nativo.
//
// Los clientes pueden enviar entidades sin id (alta nueva), con un id en
// formato nativo del almacén (UUID) o con un id opaco heredado de otra
// fuente. Todas las escrituras son upserts sobre la clave canónica que
// devuelve Resolve, de modo que reenviar el mismo payload nunca crea una
// segunda entidad.
package identity

import "github.com/google/uuid"

// Resolve asigna la clave canónica de almacenamiento para un id externo:
//
//   - vacío → se acuña un UUID nuevo (entidad nueva);
//   - con forma de UUID → su representación canónica en minúsculas,
//     de modo que variantes sintácticas del mismo UUID colisionen en la
//     misma entidad;
//   - cualquier otro texto → se usa tal cual (ids heredados incompatibles
//     con el formato nativo).
//
// Resolve es determinista para toda entrada no vacía: la misma entrada
// produce siempre la misma clave canónica.
func Resolve(extID string) string {
	if extID == "" {
		return uuid.NewString()
	}
	if u, err := uuid.Parse(extID); err == nil {
		return u.String()
	}
	return extID
}
