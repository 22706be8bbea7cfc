package recipe

import (
	"bytes"
	stderrors "errors"
	"maps"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wort/pkg/brew"
	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/ingredients"
	"github.com/arthur-debert/wort/pkg/logging"
)

// Recipe is a parsed recipe document.
type Recipe struct {
	Name        string
	Description string
	// Volume is the wort delivered to the primary, gal.
	Volume float64
	// Parameters override the configured brew parameters for this recipe.
	Parameters  map[string]any
	Ingredients *ingredients.Ingredients
	Log         []Measurement
}

type document struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Volume      float64        `yaml:"volume"`
	Parameters  map[string]any `yaml:"parameters,omitempty"`
	Ingredients []yaml.Node    `yaml:"ingredients"`
	Log         []yaml.Node    `yaml:"log,omitempty"`
}

// annotate adds the offending line to errors raised while building
// ingredients, keeping their code.
func annotate(err error, node *yaml.Node) error {
	var we *errors.WortError
	if stderrors.As(err, &we) {
		if _, ok := we.Details["line"]; !ok {
			we.WithDetail("line", node.Line)
		}
		return we
	}
	return errors.Wrapf(err, errors.ErrRecipeParse, "line %d", node.Line).WithDetail("line", node.Line)
}

// Parse reads a recipe document.
func Parse(data []byte) (*Recipe, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrRecipeParse, "malformed recipe document")
	}
	if doc.Volume <= 0 {
		return nil, errors.Newf(errors.ErrRecipeParse, "recipe %q needs a positive volume, got %g", doc.Name, doc.Volume).
			WithDetail("key", "volume")
	}

	r := &Recipe{
		Name:        doc.Name,
		Description: doc.Description,
		Volume:      doc.Volume,
		Parameters:  doc.Parameters,
		Ingredients: ingredients.Must(),
	}
	for i := range doc.Ingredients {
		node := &doc.Ingredients[i]
		item, err := decodeIngredient(node)
		if err != nil {
			return nil, annotate(err, node)
		}
		if err := r.Ingredients.Append(item); err != nil {
			return nil, annotate(err, node)
		}
	}
	for i := range doc.Log {
		node := &doc.Log[i]
		m, err := decodeMeasurement(node)
		if err != nil {
			return nil, annotate(err, node)
		}
		r.Log = append(r.Log, m)
	}
	return r, nil
}

// Marshal writes r as a recipe document.
func Marshal(r *Recipe) ([]byte, error) {
	doc := document{
		Name:        r.Name,
		Description: r.Description,
		Volume:      r.Volume,
		Parameters:  r.Parameters,
	}
	if r.Ingredients != nil {
		for _, item := range r.Ingredients.All() {
			node, err := encodeIngredient(item)
			if err != nil {
				return nil, err
			}
			doc.Ingredients = append(doc.Ingredients, *node)
		}
	}
	for _, m := range r.Log {
		node, err := encodeMeasurement(m)
		if err != nil {
			return nil, err
		}
		doc.Log = append(doc.Log, *node)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrRecipeWrite, "cannot encode recipe")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRecipeWrite, "cannot encode recipe")
	}
	return buf.Bytes(), nil
}

// Load reads the recipe at path from fs.
func Load(fs afero.Fs, path string) (*Recipe, error) {
	logger := logging.GetLogger("recipe")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).WithDetail("path", path)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, withPath(err, path)
	}

	logger.Debug().
		Str("path", path).
		Str("name", r.Name).
		Int("ingredients", r.Ingredients.Len()).
		Msg("Loaded recipe")
	return r, nil
}

// Save writes r to path on fs.
func Save(fs afero.Fs, path string, r *Recipe) error {
	data, err := Marshal(r)
	if err != nil {
		return withPath(err, path)
	}
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrRecipeWrite, "cannot write %s", path).WithDetail("path", path)
	}
	return nil
}

func withPath(err error, path string) error {
	var we *errors.WortError
	if stderrors.As(err, &we) {
		return we.WithDetail("path", path)
	}
	return err
}

// Values merges the recipe's parameters over base, then overrides over
// both. None of the inputs is modified.
func (r *Recipe) Values(base, overrides map[string]any) map[string]any {
	values := make(map[string]any, len(base)+len(r.Parameters)+len(overrides))
	maps.Copy(values, base)
	maps.Copy(values, r.Parameters)
	maps.Copy(values, overrides)
	return values
}

// Brew prepares the recipe for evaluation with the given parameters.
func (r *Recipe) Brew(base, overrides map[string]any) (*brew.Brew, error) {
	return brew.FromValues(r.Ingredients, r.Volume, r.Values(base, overrides))
}
