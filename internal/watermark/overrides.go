package watermark

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Overrides is the raw override table: a JSON object mapping keys to
// per-page settings entries. Recognized keys are "*" (applies to every
// page), an exact base filename, and a lower-cased base filename.
type Overrides map[string]json.RawMessage

// LoadOverrides reads an override table from the JSON file at path.
// An empty path yields an empty table. The top level of the document
// must be a JSON object; anything else is an error that aborts the
// batch before any page is touched.
func LoadOverrides(path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}
	return ParseOverrides(data)
}

// ParseOverrides parses an override table from raw JSON.
func ParseOverrides(data []byte) (Overrides, error) {
	var table Overrides
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("overrides JSON must be an object mapping filenames to settings: %w", err)
	}
	// A JSON null also unmarshals into a map without error; only a real
	// object counts as a table.
	if table == nil {
		return nil, fmt.Errorf("overrides JSON must be an object mapping filenames to settings")
	}
	return table, nil
}

// ZoneList is a list of avoid boxes parsed from [x, y, w, h] arrays.
// Entries that do not have exactly four numeric components are dropped
// silently; a mixed list keeps its well-formed boxes.
type ZoneList []Box

// UnmarshalJSON implements per-element tolerance for zone arrays.
func (z *ZoneList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		// Not an array at all; treat as no zones rather than rejecting
		// the whole entry.
		*z = ZoneList{}
		return nil
	}
	zones := make(ZoneList, 0, len(raw))
	for _, el := range raw {
		var comps []float64
		if err := json.Unmarshal(el, &comps); err != nil || len(comps) != 4 {
			continue
		}
		zones = append(zones, Box{
			X: int(comps[0]),
			Y: int(comps[1]),
			W: int(comps[2]),
			H: int(comps[3]),
		})
	}
	*z = zones
	return nil
}

// Override is a partial per-page settings record. A nil field means
// "not specified here"; merging overlays only the fields that are
// present. Unrecognized keys in the JSON are ignored.
type Override struct {
	Anchor  *Anchor
	Offset  []int
	Margin  *int
	Scale   *float64
	Opacity *float64
	Avoid   ZoneList
}

// UnmarshalJSON decodes an entry field by field so that one mistyped
// field (say, a quoted margin) drops only itself, not its well-typed
// siblings. A non-object entry is an error for the caller to skip.
func (o *Override) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("override entry must be an object")
	}
	if raw, ok := fields["anchor"]; ok {
		var v Anchor
		if json.Unmarshal(raw, &v) == nil {
			o.Anchor = &v
		}
	}
	if raw, ok := fields["offset"]; ok {
		var v []int
		if json.Unmarshal(raw, &v) == nil {
			o.Offset = v
		}
	}
	if raw, ok := fields["margin"]; ok {
		var v int
		if json.Unmarshal(raw, &v) == nil {
			o.Margin = &v
		}
	}
	if raw, ok := fields["scale"]; ok {
		var v float64
		if json.Unmarshal(raw, &v) == nil {
			o.Scale = &v
		}
	}
	if raw, ok := fields["opacity"]; ok {
		var v float64
		if json.Unmarshal(raw, &v) == nil {
			o.Opacity = &v
		}
	}
	if raw, ok := fields["avoid"]; ok {
		var v ZoneList
		if json.Unmarshal(raw, &v) == nil {
			o.Avoid = v
		}
	}
	return nil
}

// merge overlays the present fields of src onto o, later entries
// winning field by field.
func (o *Override) merge(src Override) {
	if src.Anchor != nil {
		o.Anchor = src.Anchor
	}
	if src.Offset != nil {
		o.Offset = src.Offset
	}
	if src.Margin != nil {
		o.Margin = src.Margin
	}
	if src.Scale != nil {
		o.Scale = src.Scale
	}
	if src.Opacity != nil {
		o.Opacity = src.Opacity
	}
	if src.Avoid != nil {
		o.Avoid = src.Avoid
	}
}

// Resolve merges the override entries that apply to the page with the
// given base filename. The candidate keys "*", the exact filename, and
// the lower-cased filename are consulted in that fixed order; later
// keys overwrite earlier ones field by field, never wholesale. Entries
// whose value is not a JSON object are ignored. When nothing matches,
// the zero Override is returned and every field falls back to the run
// defaults independently.
func Resolve(name string, table Overrides) Override {
	var merged Override
	for _, key := range []string{"*", name, strings.ToLower(name)} {
		raw, ok := table[key]
		if !ok {
			continue
		}
		var entry Override
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		merged.merge(entry)
	}
	return merged
}

// Settings is the complete set of effective per-page settings after
// override resolution.
type Settings struct {
	Anchor  Anchor
	OffsetX int
	OffsetY int
	Margin  int
	Scale   float64
	Opacity float64
	Avoid   []Box
}

// Apply overlays the present fields of o onto the defaults in s and
// returns the result. An offset with a single component replaces only
// the X default.
func (s Settings) Apply(o Override) Settings {
	if o.Anchor != nil {
		s.Anchor = *o.Anchor
	}
	if len(o.Offset) >= 1 {
		s.OffsetX = o.Offset[0]
	}
	if len(o.Offset) >= 2 {
		s.OffsetY = o.Offset[1]
	}
	if o.Margin != nil {
		s.Margin = *o.Margin
	}
	if o.Scale != nil {
		s.Scale = *o.Scale
	}
	if o.Opacity != nil {
		s.Opacity = *o.Opacity
	}
	if o.Avoid != nil {
		s.Avoid = o.Avoid
	}
	return s
}
