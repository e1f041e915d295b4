package careertools

import (
	"context"
	"fmt"

	"github.com/harun/careerintel/pkg/tool"
)

func resumeOptimizerTool(opts Options) tool.Definition {
	return tool.Definition{
		Name:        "resume_optimizer",
		Description: "Create ATS-friendly resumes optimized for job applications",
		UseWhen:     "When you need to create or improve your resume for job applications",
		Parameters: []tool.Parameter{
			{Name: "current_resume", Type: tool.TypeString, Description: "Your current resume text or description", Required: true},
			{Name: "target_job", Type: tool.TypeString, Description: "The job title you're applying for", Required: true},
			{Name: "years_experience", Type: tool.TypeInteger, Description: "Your years of professional experience", Default: 2},
		},
		Handler: func(ctx context.Context, params map[string]interface{}) (string, error) {
			targetJob := stringArg(params, "target_job")
			yearsExperience := intArg(params, "years_experience")

			return fmt.Sprintf(`
# ATS-Optimized Resume for: %s

## 📝 Professional Summary
Results-driven %s with %d years of experience in [industry]. Proven track record of [key achievement]. Skilled in [top 3 relevant skills].

## 🎯 Key Skills (ATS Keywords)
- **Technical Skills:** [Relevant technical skills]
- **Soft Skills:** Leadership, Communication, Problem-solving
- **Tools & Technologies:** [Industry-specific tools]

## 💼 Professional Experience

### [Current/Recent Role] | [Company] | [Dates]
- **Achievement 1:** [Quantified achievement with metrics]
- **Achievement 2:** [Another quantified achievement]
- **Achievement 3:** [Third achievement with impact]

### [Previous Role] | [Company] | [Dates]
- **Achievement 1:** [Quantified achievement]
- **Achievement 2:** [Another achievement]

## 🎓 Education
**Degree in [Field]** | [University] | [Year]
- GPA: [If above 3.5]
- Relevant Coursework: [Key courses]

## 📚 Certifications
- [Relevant certification 1]
- [Relevant certification 2]

## 🏆 ATS Optimization Tips Applied:
✅ Used industry-standard keywords
✅ Quantified achievements with metrics
✅ Clean, scannable format
✅ Relevant skills prominently featured
✅ Action verbs for achievements
✅ Consistent formatting throughout

## 💡 Additional Recommendations:
1. **Customize for each application** - Adjust keywords based on job description
2. **Keep it concise** - 1-2 pages maximum
3. **Use bullet points** - Easy for ATS to parse
4. **Include metrics** - Numbers impress both ATS and humans
`, targetJob, targetJob, yearsExperience), nil
		},
	}
}
