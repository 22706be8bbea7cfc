package recipe

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/wort/pkg/errors"
	"github.com/arthur-debert/wort/pkg/timing"
)

// timingValue is a timing written as a tagged scalar: !Boil 60, !Mash.
type timingValue struct {
	timing.Timing
}

func (tv *timingValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || !strings.HasPrefix(node.Tag, "!") || strings.HasPrefix(node.Tag, "!!") {
		return errors.Newf(errors.ErrInvalidTiming, "line %d: a timing is written as a tag such as !Boil 60", node.Line).
			WithDetail("line", node.Line)
	}
	t, err := timing.Parse(strings.TrimPrefix(node.Tag, "!"), node.Value)
	if err != nil {
		return err
	}
	tv.Timing = t
	return nil
}

func (tv timingValue) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{
		Kind: yaml.ScalarNode,
		Tag:  "!" + tv.Stage().Tag(),
	}
	if v, ok := tv.Time(); ok {
		node.Value = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return node, nil
}
