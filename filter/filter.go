// Package filter compiles expr-language expressions into predicates over
// torrents, e.g. `Ratio > 2.0 and Seeding` or `hasTag("trumped")`.
package filter

import (
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/qbitweb/qbittorrent"
)

// Filter is a compiled torrent predicate, safe for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile validates and compiles an expression into a Filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // torrent properties are injected at runtime
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Match evaluates the filter against a torrent. Evaluation errors count as
// no match.
func (f *Filter) Match(t qbittorrent.Torrent) bool {
	result, err := expr.Run(f.program, environment(t))
	if err != nil {
		return false
	}
	return result.(bool)
}

// Expression returns the original expression text.
func (f *Filter) Expression() string {
	return f.expression
}

// helperFunctions is the static environment used for compile-time checking.
func helperFunctions() map[string]any {
	env := make(map[string]any, 16)
	addHelperFunctions(env)
	return env
}

func addHelperFunctions(env map[string]any) {
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["lower"] = strings.ToLower
	env["now"] = time.Now
}

// environment builds the runtime environment for one torrent.
func environment(t qbittorrent.Torrent) map[string]any {
	tags := splitTags(t.Tags)

	env := make(map[string]any, 32)
	addHelperFunctions(env)

	env["Hash"] = t.Hash
	env["Name"] = t.Name
	env["State"] = t.State
	env["Category"] = t.Category
	env["Tags"] = tags
	env["Size"] = t.Size
	env["Progress"] = t.Progress
	env["Ratio"] = t.Ratio
	env["DownloadSpeed"] = t.DownloadSpeed
	env["UploadSpeed"] = t.UploadSpeed
	env["NumSeeds"] = t.NumSeeds
	env["NumLeechers"] = t.NumLeechers
	env["AddedOn"] = time.Unix(t.AddedOn, 0)
	env["CompletionOn"] = time.Unix(t.CompletionOn, 0)
	env["Seeding"] = t.IsActivelySeeding()
	env["Complete"] = t.IsComplete()

	env["hasTag"] = func(tag string) bool {
		for _, existing := range tags {
			if strings.EqualFold(existing, tag) {
				return true
			}
		}
		return false
	}

	return env
}

// splitTags parses the comma-separated tag field of a torrent listing.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
