package entity

// Item representa un artículo del maestro de items del ERP (solo lectura).
// Description puede venir vacía; en ese caso se usa ItemName.
type Item struct {
	ItemCode    string
	ItemName    string
	Description string
}

// DisplayDescription devuelve la descripción del artículo o, si está vacía, su nombre.
func (i *Item) DisplayDescription() string {
	if i.Description != "" {
		return i.Description
	}
	return i.ItemName
}
