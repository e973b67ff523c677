package display

// Classer is anything with a mutable set of class tokens.
type Classer interface {
	AddClass(tokens ...string)
	RemoveClass(tokens ...string)
}

// Button is one member of a button group.
type Button struct {
	ID      string
	Label   string
	Classes ClassList
}

func NewButton(id, label string, classes ...string) *Button {
	b := &Button{ID: id, Label: label}
	b.Classes.Add(classes...)
	return b
}

func (b *Button) AddClass(tokens ...string) {
	b.Classes.Add(tokens...)
}

func (b *Button) RemoveClass(tokens ...string) {
	b.Classes.Remove(tokens...)
}

func (b *Button) HasClass(token string) bool {
	return b.Classes.Contains(token)
}

// ToggleSelectedButtonStyles marks every button unselected, then marks
// target selected. target does not have to be a member of buttons.
func ToggleSelectedButtonStyles[T Classer](buttons []T, target T, selected, unselected []string) {
	for _, btn := range buttons {
		btn.RemoveClass(selected...)
		btn.AddClass(unselected...)
	}
	target.RemoveClass(unselected...)
	target.AddClass(selected...)
}
