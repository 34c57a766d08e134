// Package schematest provides fixtures for code that consumes the house
// feature schema.
package schematest

import "github.com/Bipul-Dubey/house-price-predictor/shared/schema"

// SampleFeatures returns a complete, typical feature set. Each call returns
// a fresh map that the caller may modify.
func SampleFeatures() schema.FeatureRequest {
	return schema.FeatureRequest{
		"ID":                       1.0,
		"Property_ID":              1001.0,
		"Building_Class":           60.0,
		"Zoning_Class":             "RL",
		"Lot_Frontage":             65.0,
		"Lot_Area":                 8450.0,
		"Street_Type":              "Pave",
		"Alley_Access":             "NA",
		"Lot_Shape":                "Reg",
		"Land_Contour":             "Lvl",
		"Utility_Type":             "AllPub",
		"Lot_Configuration":        "Inside",
		"Land_Slope":               "Gtl",
		"Neighborhood":             "CollgCr",
		"Condition_1":              "Norm",
		"Condition_2":              "Norm",
		"Building_Type":            "1Fam",
		"House_Style":              "2Story",
		"Overall_Quality":          7.0,
		"Overall_Condition":        5.0,
		"Year_Built":               2003.0,
		"Year_Remodeled":           2003.0,
		"Roof_Style":               "Gable",
		"Roof_Material":            "CompShg",
		"Exterior_Material_1":      "VinylSd",
		"Exterior_Material_2":      "VinylSd",
		"Masonry_Veneer_Type":      "BrkFace",
		"Masonry_Veneer_Area":      196.0,
		"Exterior_Quality":         "Gd",
		"Exterior_Condition":       "TA",
		"Foundation_Type":          "PConc",
		"Basement_Quality":         "Gd",
		"Basement_Condition":       "TA",
		"Basement_Exposure":        "No",
		"Basement_Finish_Type_1":   "GLQ",
		"Basement_Finish_SF_1":     706.0,
		"Basement_Finish_Type_2":   "Unf",
		"Basement_Finish_SF_2":     0.0,
		"Basement_Unfinished_SF":   150.0,
		"Total_Basement_SF":        856.0,
		"Heating_Type":             "GasA",
		"Heating_Quality":          "Ex",
		"Central_Air":              "Y",
		"Electrical_System":        "SBrkr",
		"First_Floor_SF":           856.0,
		"Second_Floor_SF":          854.0,
		"Low_Quality_Finished_SF":  0.0,
		"Above_Ground_Living_Area": 1710.0,
		"Basement_Full_Bathrooms":  1.0,
		"Basement_Half_Bathrooms":  0.0,
		"Full_Bathrooms":           2.0,
		"Half_Bathrooms":           1.0,
		"Bedrooms_Above_Ground":    3.0,
		"Kitchens_Above_Ground":    1.0,
		"Kitchen_Quality":          "Gd",
		"Total_Rooms_Above_Ground": 8.0,
		"Functionality":            "Typ",
		"Fireplaces":               0.0,
		"Fireplace_Quality":        "NA",
		"Garage_Type":              "Attchd",
		"Garage_Year_Built":        2003.0,
		"Garage_Finish":            "RFn",
		"Garage_Capacity":          2.0,
		"Garage_Area":              548.0,
		"Garage_Quality":           "TA",
		"Garage_Condition":         "TA",
		"Paved_Driveway":           "Y",
		"Wood_Deck_Area":           0.0,
		"Open_Porch_Area":          61.0,
		"Enclosed_Porch_Area":      0.0,
		"Three_Season_Porch":       0.0,
		"Screen_Porch_Area":        0.0,
		"Pool_Area":                0.0,
		"Pool_Quality":             "NA",
		"Fence_Quality":            "NA",
		"Miscellaneous_Feature":    "NA",
		"Miscellaneous_Value":      0.0,
		"Month_Sold":               2.0,
		"Year_Sold":                2008.0,
		"Sale_Type":                "WD",
		"Sale_Condition":           "Normal",
	}
}
