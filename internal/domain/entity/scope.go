package entity

// Scope ámbito de aplicabilidad de un anuncio sobre productos o categorías.
// Variante explícita del tri-estado que en storage es un array nullable:
//
//	NULL     -> All=true  (aplica a todo)
//	[]       -> All=false, IDs vacío (no aplica a nada)
//	[7, 9]   -> All=false, IDs poblado
type Scope struct {
	All bool
	IDs []int64
}

// ScopeAll ámbito sin restricción.
func ScopeAll() Scope {
	return Scope{All: true}
}

// ScopeOf ámbito restringido a los ids dados. Sin ids, no aplica a nada.
func ScopeOf(ids ...int64) Scope {
	return Scope{IDs: ids}
}

// Matches indica si el ámbito cubre el id dado.
func (s Scope) Matches(id int64) bool {
	if s.All {
		return true
	}
	for _, v := range s.IDs {
		if v == id {
			return true
		}
	}
	return false
}
