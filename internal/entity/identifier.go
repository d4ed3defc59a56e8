package entity

import "strconv"

// ProductIdentifier selects a product either by catalog id or by name.
// Exactly one of the two fields must be set for the identifier to be valid.
type ProductIdentifier struct {
	ProductID   *int
	ProductName string
}

// ByID builds an identifier selecting a product by catalog id.
func ByID(id int) ProductIdentifier {
	return ProductIdentifier{ProductID: &id}
}

// ByName builds an identifier selecting a product by name.
func ByName(name string) ProductIdentifier {
	return ProductIdentifier{ProductName: name}
}

// Valid reports whether exactly one of id or name is set.
func (p ProductIdentifier) Valid() bool {
	return (p.ProductID != nil) != (p.ProductName != "")
}

func (p ProductIdentifier) String() string {
	if p.ProductID != nil {
		return strconv.Itoa(*p.ProductID)
	}
	return p.ProductName
}
