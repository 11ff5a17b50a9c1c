// Package genai provides integration with LLM APIs (Gemini and Groq).
// This file contains the prompt templates for the AI endpoints.
package genai

import (
	"fmt"
	"strings"
)

// ChatMessage is one turn of chatbot history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CareerAdvisorPrompt builds the career recommendation prompt.
// courseLines are preformatted "- CODE: Title (...)" entries.
// The response contract is JSON-only so the handler can parse it.
func CareerAdvisorPrompt(careerGoal, major string, courseLines []string) string {
	return fmt.Sprintf(`You are a career advisor helping a %s student plan their courses.

Career Goal: %s

Available Courses:
%s

Based on this career goal, please:
1. Identify 5-8 key skills needed for this career
2. Recommend 5-8 courses from the list that would best prepare the student
3. Explain how each recommended course contributes to the career goal
4. Estimate what percentage of required skills these courses would cover

Return your response in this JSON format:
{
  "career_analysis": "Brief analysis of the career path",
  "required_skills": ["skill1", "skill2", ...],
  "recommended_courses": [
    {
      "code": "COURSE CODE",
      "relevance": "How this course helps with the career goal",
      "skills_taught": ["skill1", "skill2"]
    }
  ],
  "skill_coverage_percentage": 85,
  "additional_advice": "Any additional recommendations"
}

Only return the JSON, no other text.
`, major, careerGoal, strings.Join(courseLines, "\n"))
}

// ColdEmailPrompt builds the prompt for a personalized research cold email.
func ColdEmailPrompt(professorName, researchSummary, studentInterests, courseContext string) string {
	var courseLine string
	if courseContext != "" {
		courseLine = fmt.Sprintf("Course Context: The student is planning to take or has taken %s\n\n", courseContext)
	}

	return fmt.Sprintf(`Generate a professional, personalized cold email from a student to a professor expressing interest in research opportunities.

Professor: %s

Professor's Research:
%s

Student's Interests:
%s

%sGuidelines:
- Keep it concise (under 200 words)
- Show genuine interest in specific research areas based on the professor's actual work
- Mention relevant background/skills
- Professional but not overly formal
- Clear ask for meeting/research opportunity
- Personalized based on professor's actual research
- Include a subject line

Format as:
Subject: [subject line]

Dear Professor [Last Name],

[email body]

Best regards,
[Student Name]

Generate the email:`, professorName, researchSummary, studentInterests, courseLine)
}

// ChatbotPrompt builds the chatbot system context with site navigation
// knowledge, the last turns of history, and the current question.
func ChatbotPrompt(message string, history []ChatMessage, courseCount int) string {
	if len(history) > 5 {
		history = history[len(history)-5:]
	}

	turns := make([]string, 0, len(history))
	for _, msg := range history {
		turns = append(turns, fmt.Sprintf("%s: %s", msg.Role, msg.Content))
	}

	return fmt.Sprintf(`You are an AI assistant for the BU Course Planner website. You help Boston University students with course planning and navigating the website.

%s

Previous conversation:
%s

Current user question: %s

INSTRUCTIONS:
- Be helpful, friendly, and conversational
- Give specific navigation directions (e.g., "Click on 'Planner' in the top menu")
- If asked about location of features, reference the navigation structure above
- Suggest relevant features based on user needs
- Keep responses concise but informative
- If asked about courses, mention specific course codes when relevant
- Guide users to the right page for their needs`,
		websiteKnowledge(courseCount), strings.Join(turns, "\n"), message)
}

// websiteKnowledge describes the frontend so the chatbot can give accurate
// navigation directions.
func websiteKnowledge(courseCount int) string {
	return fmt.Sprintf(`WEBSITE STRUCTURE & NAVIGATION:
The BU Course Planner has 5 main sections accessible from the top navigation bar:

1. HOME (/) - Landing page
   - Overview of the application
   - Quick links to all features
   - "Browse Courses" button goes to Explorer
   - "Plan Your Semester" button goes to Planner
   - "Get AI Recommendations" button goes to Progress
   - "View Professors" button goes to Professors page

2. EXPLORER (/explorer) - Course Catalog Browser
   - Search bar to search courses by name, code, or keywords
   - Filter by department dropdown
   - Filter by level (Introductory, Intermediate, Advanced, Graduate)
   - Shows all %d BU courses
   - Click any course card to see full details in a modal

3. PLANNER (/planner) - Semester Planning Tool
   - Drag-and-drop interface for planning courses
   - Add semesters with "Add Semester" button
   - Drag courses from catalog to semester boards
   - Export plan to PDF with "Export to PDF" button
   - Visual prerequisite flow diagram
   - Prerequisites are validated automatically

4. PROGRESS (/progress) - AI Career Advisor
   - Two modes: "Browse Career Paths" and "AI Custom Advisor"
   - Browse preset career paths (Software Engineer, Data Scientist, etc.)
   - OR enter ANY custom career goal for AI recommendations
   - AI analyzes your goal and recommends optimal courses
   - Shows skill coverage percentage
   - Displays required skills for the career
   - Click "Get Recommendations" to use AI (requires API key)

5. PROFESSORS (/professors) - Professor Research
   - Browse all BU professors
   - Filter by department
   - Click professor name to see research details
   - View publications from OpenAlex
   - Generate AI-powered cold emails to professors
   - See research areas and collaborators

HOW TO USE KEY FEATURES:
- To plan a semester: Go to Planner, click Add Semester, drag courses from the left sidebar
- To search courses: Go to Explorer and use the search bar or filters
- To get career advice: Go to Progress, choose a preset career OR enter a custom goal, click "Get Recommendations"
- To research professors: Go to Professors and click on a professor name
- To export your plan: Go to Planner and click the "Export to PDF" button

DATA AVAILABLE:
- %d BU courses from 2022 onwards
- Course codes, titles, credits, levels, departments
- Professor information with OpenAlex research data`, courseCount, courseCount)
}
