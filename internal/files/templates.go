package files

import "encoding/json"

// DefaultSchemaVersion is stamped on every freshly generated schema.
const DefaultSchemaVersion = "1.0.0"

// TemplateBlank is the only template currently offered by the builder.
const TemplateBlank = "blank"

// ScreenLayout positions a node on the character grid.
type ScreenLayout struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ScreenProps holds the root screen metadata edited in the builder.
type ScreenProps struct {
	RoutineName string `json:"routineName"`
	Description string `json:"description"`
	Namespace   string `json:"namespace"`
}

// ScreenNode is the root of a screen schema tree.
type ScreenNode struct {
	Type     string       `json:"type"`
	Layout   ScreenLayout `json:"layout"`
	Props    ScreenProps  `json:"props"`
	Children []any        `json:"children"`
}

type schemaDefaults struct {
	SchemaVersion string     `json:"schemaVersion"`
	Screen        ScreenNode `json:"screen"`
}

// TemplateDefaults returns the initial schema payload for a template.
// Unknown templates are an input error, not a storage concern.
func TemplateDefaults(template string) (json.RawMessage, error) {
	if template != TemplateBlank {
		return nil, ErrInvalidInput
	}
	defaults := schemaDefaults{
		SchemaVersion: DefaultSchemaVersion,
		Screen: ScreenNode{
			Type:   "ScreenRoot",
			Layout: ScreenLayout{Row: 1, Col: 1, Width: 80, Height: 24},
			Props: ScreenProps{
				RoutineName: "",
				Description: "",
				Namespace:   "",
			},
			Children: []any{},
		},
	}
	return json.Marshal(defaults)
}
