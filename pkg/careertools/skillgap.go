package careertools

import (
	"context"
	"fmt"

	"github.com/harun/careerintel/pkg/tool"
)

func skillGapAnalyzerTool(opts Options) tool.Definition {
	return tool.Definition{
		Name:        "skill_gap_analyzer",
		Description: "Analyze skill gaps and provide personalized learning recommendations",
		UseWhen:     "When you want to identify skills you need to develop for career advancement",
		Parameters: []tool.Parameter{
			{Name: "current_role", Type: tool.TypeString, Description: "Your current job title or role", Required: true},
			{Name: "target_role", Type: tool.TypeString, Description: "The role you want to transition to", Required: true},
			{Name: "current_skills", Type: tool.TypeString, Description: "Your current skills (comma-separated)", Required: true},
			{Name: "years_experience", Type: tool.TypeInteger, Description: "Years of experience in your field", Default: 2},
		},
		Handler: func(ctx context.Context, params map[string]interface{}) (string, error) {
			currentRole := stringArg(params, "current_role")
			targetRole := stringArg(params, "target_role")
			currentSkills := stringArg(params, "current_skills")
			yearsExperience := intArg(params, "years_experience")

			return fmt.Sprintf(`
# Skill Gap Analysis: %s → %s

## 📊 Current Skills Assessment
**Current Role:** %s
**Target Role:** %s
**Experience Level:** %d years

**Your Current Skills:** %s

## 🎯 Skill Gap Analysis

### 🔴 Critical Gaps (Must Have)
1. **Technical Skills:**
   - [Identify missing technical skills]
   - Priority: High
   - Time to acquire: 3-6 months

2. **Domain Knowledge:**
   - [Industry-specific knowledge gaps]
   - Priority: High
   - Time to acquire: 6-12 months

### 🟡 Important Gaps (Should Have)
1. **Soft Skills:**
   - [Leadership, communication gaps]
   - Priority: Medium
   - Time to acquire: 3-6 months

2. **Tools & Technologies:**
   - [Specific tools needed]
   - Priority: Medium
   - Time to acquire: 1-3 months

### 🟢 Nice to Have
1. **Certifications:**
   - [Relevant certifications]
   - Priority: Low
   - Time to acquire: 1-2 months

## 📚 Personalized Learning Plan

### Phase 1: Foundation (Months 1-3)
**Focus:** Core technical skills
- **Course 1:** [Specific course recommendation]
- **Project 1:** [Hands-on project]
- **Timeline:** 10-15 hours/week

### Phase 2: Specialization (Months 4-6)
**Focus:** Domain-specific knowledge
- **Course 2:** [Advanced course]
- **Project 2:** [Portfolio project]
- **Timeline:** 8-12 hours/week

### Phase 3: Application (Months 7-9)
**Focus:** Real-world application
- **Internship/Volunteer:** [Opportunity type]
- **Networking:** [Industry events]
- **Timeline:** 5-8 hours/week

## 🎯 Recommended Resources

### Online Courses
- **Platform 1:** [Course recommendations]
- **Platform 2:** [Additional courses]
- **Cost:** $200-500 total

### Books & Reading
- **Book 1:** [Title and author]
- **Book 2:** [Title and author]
- **Industry blogs:** [Specific recommendations]

### Networking & Mentorship
- **Professional groups:** [LinkedIn groups, meetups]
- **Mentorship programs:** [Specific programs]
- **Industry events:** [Conferences, workshops]

## 📈 Success Metrics
- **Technical proficiency:** [Specific metrics]
- **Portfolio projects:** [Number and types]
- **Network growth:** [Target connections]
- **Certifications:** [Specific certifications]

## 🚀 Action Plan
1. **Week 1-2:** Enroll in foundational courses
2. **Month 1:** Complete first project
3. **Month 3:** Apply for relevant certifications
4. **Month 6:** Start networking in target industry
5. **Month 9:** Apply for target role positions
`, currentRole, targetRole, currentRole, targetRole, yearsExperience, currentSkills), nil
		},
	}
}
