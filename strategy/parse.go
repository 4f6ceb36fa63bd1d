package strategy

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSpec indicates a strategy DSL string could not be parsed.
type ErrMalformedSpec struct {
	Token  string
	Reason string
}

func (e *ErrMalformedSpec) Error() string {
	return fmt.Sprintf("strategy: malformed token %q: %s", e.Token, e.Reason)
}

// Parse reads the comma-separated strategy DSL from spec.md §6: a
// sequence of triplets (kind-letter in {p,s}, axis-letter in {m,n,k},
// divisor-integer), e.g. "pm2,sm2,pk2" = parallel-split m by 2,
// sequential-split m by 2, parallel-split k by 2.
//
// Parse performs only lexical/shape validation (well-formed triplets,
// divisor >= 2); it does not check the divisor product against a process
// count or the memory recurrence — pass the result to WithSteps and
// Compile for that.
func Parse(spec string) ([]Step, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	tokens := strings.Split(spec, ",")
	steps := make([]Step, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		step, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return steps, nil
}

func parseToken(tok string) (Step, error) {
	if len(tok) < 3 {
		return Step{}, &ErrMalformedSpec{Token: tok, Reason: "expected kind+axis+divisor, e.g. \"pm2\""}
	}

	var kind StepKind
	switch tok[0] {
	case 'p':
		kind = Parallel
	case 's':
		kind = Sequential
	default:
		return Step{}, &ErrMalformedSpec{Token: tok, Reason: "kind letter must be 'p' or 's'"}
	}

	var axis Axis
	switch tok[1] {
	case 'm':
		axis = M
	case 'n':
		axis = N
	case 'k':
		axis = K
	default:
		return Step{}, &ErrMalformedSpec{Token: tok, Reason: "axis letter must be 'm', 'n', or 'k'"}
	}

	divisor, err := strconv.Atoi(tok[2:])
	if err != nil {
		return Step{}, &ErrMalformedSpec{Token: tok, Reason: "divisor must be an integer"}
	}
	if divisor < 2 {
		return Step{}, &ErrMalformedSpec{Token: tok, Reason: "divisor must be >= 2"}
	}

	return Step{Kind: kind, Axis: axis, Divisor: divisor}, nil
}

// Format renders steps back into the DSL grammar Parse accepts, e.g.
// Format(Parse("pm2,sm2,pk2")) == "pm2,sm2,pk2".
func Format(steps []Step) string {
	parts := make([]string, len(steps))
	for i, step := range steps {
		parts[i] = fmt.Sprintf("%s%s%d", step.Kind, step.Axis, step.Divisor)
	}

	return strings.Join(parts, ",")
}
