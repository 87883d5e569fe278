package stability

import (
	"sort"
	"strings"

	set "github.com/hashicorp/go-set/v3"
	"github.com/veld-lang/veld/runtime"
	"github.com/veld-lang/veld/types"
)

// Report groups the return tags a probed function produced, keyed by the
// input tag that produced them. A function is stable when every input tag
// maps to exactly one return tag.
type Report struct {
	perInput map[string]*set.HashSet[types.Type, uint64]
}

// Analyze feeds each sample through probe and records the observed return
// tag under the sample's input tag.
func Analyze(probe func(runtime.Value) (runtime.Value, error), samples []runtime.Value) (*Report, error) {
	r := &Report{perInput: map[string]*set.HashSet[types.Type, uint64]{}}
	for _, sample := range samples {
		out, err := probe(sample)
		if err != nil {
			return nil, err
		}
		in := runtime.TypeOf(sample).String()
		tags, ok := r.perInput[in]
		if !ok {
			tags = set.NewHashSet[types.Type, uint64](1)
			r.perInput[in] = tags
		}
		tags.Insert(runtime.TypeOf(out))
	}
	return r, nil
}

// Stable reports whether the probed function's return tag was a pure
// function of the input tag over the sampled inputs.
func (r *Report) Stable() bool {
	for _, tags := range r.perInput {
		if tags.Size() != 1 {
			return false
		}
	}
	return true
}

// ReturnTags lists the tags observed for one input tag, in canonical order.
func (r *Report) ReturnTags(inputTag string) []types.Type {
	tags, ok := r.perInput[inputTag]
	if !ok {
		return nil
	}
	out := tags.Slice()
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func (r *Report) String() string {
	inputs := make([]string, 0, len(r.perInput))
	for in := range r.perInput {
		inputs = append(inputs, in)
	}
	sort.Strings(inputs)
	var sb strings.Builder
	for _, in := range inputs {
		parts := make([]string, 0)
		for _, t := range r.ReturnTags(in) {
			parts = append(parts, t.String())
		}
		sb.WriteString(in)
		sb.WriteString(" -> {")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteString("}\n")
	}
	return sb.String()
}
