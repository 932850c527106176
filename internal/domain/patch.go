package domain

// PatchField is one requested change of a partial update.
type PatchField struct {
	Name  string
	Value any
}

// Patch is an ordered set of field changes. Order follows the request.
type Patch []PatchField

// Has reports whether the patch touches the named field.
func (p Patch) Has(name string) bool {
	for _, f := range p {
		if f.Name == name {
			return true
		}
	}
	return false
}
