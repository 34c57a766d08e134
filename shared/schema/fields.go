package schema

import (
	"errors"
	"fmt"
)

// houseFeatures is the column order the regression pipeline was trained on.
// The scoring pipeline is positional, so this order must not change.
var houseFeatures = []string{
	"ID", "Property_ID", "Building_Class", "Zoning_Class", "Lot_Frontage", "Lot_Area", "Street_Type",
	"Alley_Access", "Lot_Shape", "Land_Contour", "Utility_Type", "Lot_Configuration", "Land_Slope",
	"Neighborhood", "Condition_1", "Condition_2", "Building_Type", "House_Style", "Overall_Quality",
	"Overall_Condition", "Year_Built", "Year_Remodeled", "Roof_Style", "Roof_Material",
	"Exterior_Material_1", "Exterior_Material_2", "Masonry_Veneer_Type", "Masonry_Veneer_Area",
	"Exterior_Quality", "Exterior_Condition", "Foundation_Type", "Basement_Quality",
	"Basement_Condition", "Basement_Exposure", "Basement_Finish_Type_1", "Basement_Finish_SF_1",
	"Basement_Finish_Type_2", "Basement_Finish_SF_2", "Basement_Unfinished_SF", "Total_Basement_SF",
	"Heating_Type", "Heating_Quality", "Central_Air", "Electrical_System", "First_Floor_SF",
	"Second_Floor_SF", "Low_Quality_Finished_SF", "Above_Ground_Living_Area", "Basement_Full_Bathrooms",
	"Basement_Half_Bathrooms", "Full_Bathrooms", "Half_Bathrooms", "Bedrooms_Above_Ground",
	"Kitchens_Above_Ground", "Kitchen_Quality", "Total_Rooms_Above_Ground", "Functionality",
	"Fireplaces", "Fireplace_Quality", "Garage_Type", "Garage_Year_Built", "Garage_Finish",
	"Garage_Capacity", "Garage_Area", "Garage_Quality", "Garage_Condition", "Paved_Driveway",
	"Wood_Deck_Area", "Open_Porch_Area", "Enclosed_Porch_Area", "Three_Season_Porch",
	"Screen_Porch_Area", "Pool_Area", "Pool_Quality", "Fence_Quality", "Miscellaneous_Feature",
	"Miscellaneous_Value", "Month_Sold", "Year_Sold", "Sale_Type", "Sale_Condition",
}

var defaultRegistry = MustNewRegistry(houseFeatures)

// Registry holds an ordered, duplicate-free list of field names.
// It is immutable once built and safe for concurrent use.
type Registry struct {
	fields []string
	index  map[string]int
}

func NewRegistry(fields []string) (*Registry, error) {
	if len(fields) == 0 {
		return nil, errors.New("schema must contain at least one field")
	}

	r := &Registry{
		fields: make([]string, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, name := range fields {
		if name == "" {
			return nil, fmt.Errorf("field %d has an empty name", i)
		}
		if prev, dup := r.index[name]; dup {
			return nil, fmt.Errorf("duplicate field %q at positions %d and %d", name, prev, i)
		}
		r.fields[i] = name
		r.index[name] = i
	}
	return r, nil
}

func MustNewRegistry(fields []string) *Registry {
	r, err := NewRegistry(fields)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the house price feature registry.
func Default() *Registry {
	return defaultRegistry
}

// Fields returns a copy of the canonical field order.
func (r *Registry) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

func (r *Registry) Len() int {
	return len(r.fields)
}

// Index reports the canonical position of name.
func (r *Registry) Index(name string) (int, bool) {
	i, ok := r.index[name]
	return i, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}
