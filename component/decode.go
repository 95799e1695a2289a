package component

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodeConfiguration populates out (a pointer to a typed local config
// struct) from raw, the same shape the teacher decodes a node's
// types.Configuration into a typed struct (maps.Map2Struct in
// expr_assign_node.go) — here via the corpus-standard mapstructure
// decoder instead of a bespoke map-to-struct helper. A component's
// Configure hook calls this once, at the top, before registering ports
// and parameters from the decoded values.
func DecodeConfiguration(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return fmt.Errorf("component: building configuration decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("component: decoding configuration: %w", err)
	}
	return nil
}
