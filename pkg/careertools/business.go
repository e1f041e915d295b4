package careertools

import (
	"context"
	"fmt"

	"github.com/harun/careerintel/pkg/tool"
)

// investment figures keyed by declared investment range
var investmentFigures = map[string][3]string{
	"low":    {"5K-15K", "10K-25K", "3K-10K"},
	"medium": {"20K-50K", "30K-75K", "15K-40K"},
	"high":   {"100K+", "150K+", "80K+"},
}

func businessOpportunityFinderTool(opts Options) tool.Definition {
	return tool.Definition{
		Name:        "business_opportunity_finder",
		Description: "Find market gaps and business opportunities",
		UseWhen:     "When you want to identify untapped market opportunities or business ideas",
		Parameters: []tool.Parameter{
			{Name: "industry", Type: tool.TypeString, Description: "Industry or sector to analyze", Required: true},
			{Name: "location", Type: tool.TypeString, Description: "Geographic location for opportunity analysis", Default: "Global"},
			{Name: "investment_range", Type: tool.TypeString, Description: "Investment range (e.g., 'low', 'medium', 'high')", Default: "medium"},
		},
		Handler: func(ctx context.Context, params map[string]interface{}) (string, error) {
			industry := stringArg(params, "industry")
			location := stringArg(params, "location")
			investmentRange := stringArg(params, "investment_range")

			figures, ok := investmentFigures[investmentRange]
			if !ok {
				figures = investmentFigures["high"]
			}

			return fmt.Sprintf(`
# Business Opportunity Analysis: %s

## 🎯 Market Analysis
**Industry:** %s
**Location:** %s
**Investment Level:** %s
**Analysis Date:** %s

## 💡 Identified Opportunities

### 1. **Digital Transformation Services**
- **Market Gap:** Small businesses struggling with digital adoption
- **Opportunity:** Provide affordable digital transformation consulting
- **Investment Required:** $%s
- **Potential Revenue:** $50K-200K annually

### 2. **AI-Powered Solutions**
- **Market Gap:** Manual processes that can be automated
- **Opportunity:** Develop AI tools for specific industry needs
- **Investment Required:** $%s
- **Potential Revenue:** $100K-500K annually

### 3. **Sustainability Services**
- **Market Gap:** Growing demand for eco-friendly solutions
- **Opportunity:** Green consulting or sustainable product development
- **Investment Required:** $%s
- **Potential Revenue:** $30K-150K annually

## 📊 Market Trends Supporting Opportunities
- **Digital Adoption:** 78%% of businesses plan to increase digital investment
- **AI Integration:** 65%% of companies are implementing AI solutions
- **Sustainability:** 82%% of consumers prefer sustainable brands

## 🚀 Next Steps
1. **Validate demand** through customer interviews
2. **Create MVP** to test market response
3. **Build partnerships** with complementary businesses
4. **Develop marketing strategy** for target audience
`, industry, industry, location, capitalize(investmentRange), analysisDate(opts),
				figures[0], figures[1], figures[2]), nil
		},
	}
}
