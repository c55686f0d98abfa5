package model

import "fmt"

// Display tables for the enumerated property attributes. Stored values are
// small ints; these maps carry the Romanian labels shown to users and
// embedded in the generated meta description.

var FloorLabels = map[int16]string{
	0: "Demisol", 1: "Parter", 2: "Etaj 1", 3: "Etaj 2", 4: "Etaj 3",
	5: "Etaj 4", 6: "Etaj 5", 7: "Etaj 6", 8: "Etaj 7", 9: "Etaj 8",
	10: "Etaj 9", 11: "Etaj 10", 12: "Etaj 11", 13: "Etaj 12", 14: "Etaj 13",
	15: "Etaj 14", 16: "Etaj 15", 17: "Etaj 16", 18: "Etaj 17", 19: "Etaj 18",
	20: "Etaj 19", 21: "Etaj 20", 22: "Etaj 21+", 23: "Ultimul etaj",
	24: "Mansardă",
}

var PartitioningLabels = map[int16]string{
	0: "Decomandat",
	1: "Semidecomandat",
	2: "Nedecomandat",
	3: "Circular",
}

var ZoningLabels = map[int16]string{
	0: "Intravilan",
	1: "Extravilan",
}

var RoomsLabels = map[int]string{
	1: "1 cameră",
	2: "2 camere",
	3: "3 camere",
	4: "4 camere",
	5: "5+ camere",
}

var BathroomsLabels = map[int]string{
	0: "Fără baie",
	1: "1 baie",
	2: "2 băi",
	3: "3 sau mai multe băi",
}

var BedroomsLabels = map[int]string{
	1: "1 dormitor",
	2: "2 dormitoare",
	3: "3 dormitoare",
	4: "4 dormitoare",
	5: "5+ dormitoare",
}

var BalconiesLabels = map[int]string{
	0: "Fără balcon",
	1: "1 balcon",
	2: "2 balcoane",
	3: "3 balcoane",
	4: "4+ balcoane",
}

var StructureLabels = map[int16]string{
	0:  "Cărămidă",
	1:  "Beton",
	2:  "BCA",
	3:  "Plăci",
	4:  "Lemn",
	5:  "Metal",
	6:  "Cărămidă + BCA",
	7:  "Beton + Metal",
	8:  "Lemn + Metal",
	9:  "Zidărie mixtă (Cărămidă + BCA + Beton)",
	10: "Structură ușoară (Metal + Lemn + Plăci)",
	11: "Combinată (Mai multe materiale)",
}

var FoundationLabels = map[int16]string{
	0: "Parter",
	1: "Subsol + Parter",
	2: "Demisol + Parter",
}

var EnergyClassLabels = map[int16]string{
	0: "Necunoscută",
	1: "A (Foarte bună)",
	2: "B (Bună)",
	3: "C (Medie)",
	4: "D (Sub medie)",
	5: "E (Scăzută)",
	6: "F (Foarte scăzută)",
	7: "G (Extrem de scăzută)",
}

// FieldLabels maps gated-field keys to the human labels used in
// validation messages.
var FieldLabels = map[string]string{
	FieldUsableSurface:  "Suprafață utilă",
	FieldLandSurface:    "Suprafață teren",
	FieldBuiltSurface:   "Suprafață construită",
	FieldBalconySurface: "Suprafață balcoane",
	FieldYear:           "Anul construcției",
	FieldPartitioning:   "Tip compartimentare",
	FieldZoning:         "Tip zonare",
	FieldRooms:          "Număr de camere",
	FieldBedrooms:       "Număr de dormitoare",
	FieldBathrooms:      "Număr de băi",
	FieldBalconies:      "Număr de balcoane",
	FieldStructure:      "Tip structură",
	FieldFloor:          "Etaj",
	FieldFoundation:     "Tip fundație",
	FieldFloorCount:     "Număr de etaje",
	FieldHasAttic:       "Are mansardă",
	FieldEnergyClass:    "Clasa energetică",
}

// FieldLabel falls back to the raw key for anything outside the table.
func FieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}

// fieldChoiceTables links each enumerated gated field to its label table,
// normalized to int keys so the whole set can be published uniformly.
var fieldChoiceTables = map[string]map[int]string{
	FieldFloor:        widenChoiceKeys(FloorLabels),
	FieldPartitioning: widenChoiceKeys(PartitioningLabels),
	FieldZoning:       widenChoiceKeys(ZoningLabels),
	FieldStructure:    widenChoiceKeys(StructureLabels),
	FieldFoundation:   widenChoiceKeys(FoundationLabels),
	FieldEnergyClass:  widenChoiceKeys(EnergyClassLabels),
	FieldRooms:        RoomsLabels,
	FieldBathrooms:    BathroomsLabels,
	FieldBedrooms:     BedroomsLabels,
	FieldBalconies:    BalconiesLabels,
}

func widenChoiceKeys(labels map[int16]string) map[int]string {
	widened := make(map[int]string, len(labels))
	for value, label := range labels {
		widened[int(value)] = label
	}
	return widened
}

// FieldChoices returns the label table for an enumerated field, nil for
// free-valued fields like surfaces or the construction year.
func FieldChoices(field string) map[int]string {
	return fieldChoiceTables[field]
}

// ChoiceLabel looks up a nullable int16 choice value in its label table.
func ChoiceLabel(labels map[int16]string, value *int16) string {
	if value == nil {
		return ""
	}
	if label, ok := labels[*value]; ok {
		return label
	}
	return fmt.Sprintf("%d", *value)
}
