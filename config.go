package htable

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type yamlOptions struct {
	Title            string     `yaml:"title"`
	Columns          []string   `yaml:"columns"`
	EmptyMessage     string     `yaml:"emptyMessage"`
	TableStyle       string     `yaml:"tableStyle"`
	TitleBackground  string     `yaml:"titleBackground"`
	TitleForeground  string     `yaml:"titleForeground"`
	HeaderBackground string     `yaml:"headerBackground"`
	HeaderForeground string     `yaml:"headerForeground"`
	RowBackgroundA   string     `yaml:"rowBackgroundA"`
	RowBackgroundB   string     `yaml:"rowBackgroundB"`
	MaxCellText      int        `yaml:"maxCellText"`
	LegacyAttributes bool       `yaml:"legacyAttributes"`
	Rules            []yamlRule `yaml:"rules"`
}

type yamlRule struct {
	Rows     string `yaml:"rows"`
	Column   string `yaml:"column"`
	Property string `yaml:"property"`
	Value    string `yaml:"value"`
}

// ParseOptions loads [Options] from a YAML document, so render
// configuration can live in a config file instead of code. Rule row
// selectors are validated: an unknown selector fails with
// [ErrInvalidSelector], and a document that is not valid YAML fails with
// [ErrInvalidConfig].
func ParseOptions(data []byte) (Options, error) {
	var raw yamlOptions
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Options{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	opts := Options{
		Title:            raw.Title,
		Columns:          raw.Columns,
		EmptyMessage:     raw.EmptyMessage,
		TableStyle:       raw.TableStyle,
		TitleBackground:  raw.TitleBackground,
		TitleForeground:  raw.TitleForeground,
		HeaderBackground: raw.HeaderBackground,
		HeaderForeground: raw.HeaderForeground,
		RowBackgroundA:   raw.RowBackgroundA,
		RowBackgroundB:   raw.RowBackgroundB,
		MaxCellText:      raw.MaxCellText,
		LegacyAttributes: raw.LegacyAttributes,
	}
	for _, r := range raw.Rules {
		rows, err := ParseRowSelector(r.Rows)
		if err != nil {
			return Options{}, err
		}
		opts.Rules = append(opts.Rules, Rule{
			Rows:     rows,
			Column:   r.Column,
			Property: r.Property,
			Value:    r.Value,
		})
	}
	return opts, nil
}
