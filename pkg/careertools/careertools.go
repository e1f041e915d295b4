// Package careertools registers the career and business intelligence tool
// set: the operator validate tool plus five report generators. All report
// handlers are pure functions of their arguments and the configured clock.
package careertools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/harun/careerintel/pkg/tool"
)

// Options configures tool registration.
type Options struct {
	// OperatorID is the registered operator identifier returned by the
	// validate tool.
	OperatorID string

	// Now supplies the analysis date stamped into reports. Defaults to
	// time.Now; fixed in tests to keep report output byte-identical.
	Now func() time.Time
}

// RegisterAll registers the full tool set. Called exactly once at startup;
// any error here is a fatal configuration problem.
func RegisterAll(registry *tool.Registry, opts Options) error {
	if registry == nil {
		return errors.New("tool registry is required")
	}
	if opts.OperatorID == "" {
		return errors.New("operator identifier is required")
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	tools := []tool.Definition{
		validateTool(opts),
		jobMarketAnalyzerTool(opts),
		resumeOptimizerTool(opts),
		businessOpportunityFinderTool(opts),
		salaryNegotiatorTool(opts),
		skillGapAnalyzerTool(opts),
	}

	for _, def := range tools {
		if err := registry.Register(def); err != nil {
			return fmt.Errorf("failed to register tool %s: %w", def.Name, err)
		}
	}
	return nil
}

func validateTool(opts Options) tool.Definition {
	return tool.Definition{
		Name:        "validate",
		Description: "Validate the bearer token and return the operator's registered identifier.",
		Handler: func(ctx context.Context, params map[string]interface{}) (string, error) {
			return opts.OperatorID, nil
		},
	}
}

func stringArg(params map[string]interface{}, name string) string {
	s, _ := params[name].(string)
	return s
}

func intArg(params map[string]interface{}, name string) int {
	n, _ := params[name].(int)
	return n
}

func analysisDate(opts Options) string {
	return opts.Now().Format("January 2, 2006")
}

var usdPrinter = message.NewPrinter(language.English)

// formatUSD renders an amount with thousands separators, e.g. 105000 -> "105,000".
func formatUSD(amount int) string {
	return usdPrinter.Sprintf("%d", amount)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func containsAny(haystack string, needles ...string) bool {
	lower := strings.ToLower(haystack)
	for _, needle := range needles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}
