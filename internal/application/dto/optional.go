package dto

import "encoding/json"

// Field es un campo JSON con tres estados: ausente, null explícito o valor.
// En un PATCH parcial los campos ausentes no tocan el registro guardado,
// mientras que un null explícito sí sobrescribe con NULL.
type Field[T any] struct {
	Set   bool // la clave vino en el cuerpo
	Value *T   // nil cuando la clave vino como null
}

// UnmarshalJSON solo se invoca cuando la clave está presente en el cuerpo,
// así que marca Set incluso para null.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Set = true
	return json.Unmarshal(b, &f.Value)
}
