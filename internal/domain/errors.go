package domain

import "errors"

// Errores de dominio (sin dependencias externas). Las fallas de validación
// de cuerpo no llegan aquí: se resuelven en la capa HTTP con detalle por campo.
var ErrNotFound = errors.New("recurso no encontrado")
