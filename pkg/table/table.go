// Package table holds the preference records that prefgrid pivots and draws.
//
// A [Record] names one entity and two labels: the label the entity prefers
// on the positive axis and the label it prefers on the negative axis. In the
// reference data ([Reference]) the entity is a country, the positive label is
// its best model for power and the negative label its best model for
// efficiency.
//
// A [Dataset] bundles records with the strings used to present them (title,
// axis labels, legend). Datasets come from [Reference] or from a TOML file
// via [Load]:
//
//	title   = "Country Preferences for Models"
//	x_label = "Model"
//	y_label = "Country"
//
//	[[record]]
//	entity   = "Antarctica"
//	positive = "ANN"
//	negative = "LGBM"
package table

import (
	"fmt"

	"github.com/matzehuels/prefgrid/pkg/errors"
)

// Record is one row of the input relation.
type Record struct {
	Entity   string `toml:"entity" json:"entity"`
	Positive string `toml:"positive" json:"positive"`
	Negative string `toml:"negative" json:"negative"`
}

// Dataset is an ordered record set plus its presentation strings.
// Record order is significant: it fixes row and column order in the matrix.
type Dataset struct {
	Title        string `toml:"title"`
	XLabel       string `toml:"x_label"`
	YLabel       string `toml:"y_label"`
	Legend       string `toml:"legend"`
	PositiveName string `toml:"positive"`
	NegativeName string `toml:"negative"`

	Records []Record `toml:"record"`
}

// Validate checks that the dataset has at least one record and that every
// record names an entity and both labels.
func (d Dataset) Validate() error {
	if len(d.Records) == 0 {
		return errors.InvalidInput("dataset has no records")
	}
	for i, r := range d.Records {
		if err := r.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "record %d", i+1)
		}
	}
	return nil
}

func (r Record) validate() error {
	fields := []struct{ name, value string }{
		{"entity", r.Entity},
		{"positive", r.Positive},
		{"negative", r.Negative},
	}
	for _, f := range fields {
		if err := errors.ValidateLabel(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}
	return nil
}

// WithDefaults returns a copy of d whose empty presentation strings are
// taken from the reference dataset. Records are never filled in.
func (d Dataset) WithDefaults() Dataset {
	ref := Reference()
	fill := func(s *string, def string) {
		if *s == "" {
			*s = def
		}
	}
	fill(&d.Title, ref.Title)
	fill(&d.XLabel, ref.XLabel)
	fill(&d.YLabel, ref.YLabel)
	fill(&d.Legend, ref.Legend)
	fill(&d.PositiveName, ref.PositiveName)
	fill(&d.NegativeName, ref.NegativeName)
	return d
}
