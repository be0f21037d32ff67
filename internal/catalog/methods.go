package catalog

import "cofoundr-be/internal/entity"

// The six built-in collaboration methods. Ids are stable and referenced by
// active collaborations; never renumber.
var builtinMethods = []entity.CollaborationMethod{
	{
		Id:          1,
		Title:       "Code Review Challenge",
		Description: "Review each other's code samples and provide constructive feedback to assess technical compatibility.",
		Duration:    "2-3 hours",
		Difficulty:  entity.DifficultyEasy,
		Category:    entity.CategoryTechnical,
		Steps: []entity.CollabStep{
			{
				Title:       "Share Code Samples",
				Description: "Each person shares a recent code sample (GitHub repo or snippet)",
				SuccessCriteria: []string{
					"Both parties share a substantial code sample (minimum 100 lines)",
					"Code includes comments and documentation",
					"Repository or snippet is accessible and well-organized",
				},
			},
			{
				Title:       "Review Code",
				Description: "Spend 30-45 minutes reviewing the other person's code",
				SuccessCriteria: []string{
					"Complete thorough review within the time limit",
					"Examine code structure, logic, and best practices",
					"Take notes on strengths and areas for improvement",
				},
			},
			{
				Title:       "Provide Written Feedback",
				Description: "Provide written feedback on code quality, structure, and suggestions",
				SuccessCriteria: []string{
					"Write detailed feedback covering at least 3 specific areas",
					"Include both positive observations and constructive criticism",
					"Provide actionable suggestions for improvement",
				},
			},
			{
				Title:       "Discussion Call",
				Description: "Discuss feedback in a 30-minute video call",
				SuccessCriteria: []string{
					"Complete 30-minute video call discussing the feedback",
					"Both parties ask clarifying questions",
					"Maintain professional and constructive dialogue",
				},
			},
			{
				Title:       "Evaluate Compatibility",
				Description: "Evaluate communication style and technical alignment",
				SuccessCriteria: []string{
					"Assess technical skill compatibility",
					"Evaluate communication effectiveness",
					"Determine mutual interest in further collaboration",
				},
			},
		},
		Outcome: "Assess technical skills, code quality standards, and communication style",
		SuccessCriteria: []string{
			"Both parties provide detailed written feedback (minimum 3 specific points each)",
			"Complete 30-minute discussion call with constructive dialogue",
			"Identify at least 2 areas of technical alignment or complementary skills",
			"Rate each other's code quality and communication on agreed criteria",
			"Decide on mutual interest in further collaboration",
		},
	},
	{
		Id:          2,
		Title:       "Mini Product Sprint",
		Description: "Build a simple feature or prototype together over a weekend to test collaboration dynamics.",
		Duration:    "2-3 days",
		Difficulty:  entity.DifficultyMedium,
		Category:    entity.CategoryProduct,
		Steps: []entity.CollabStep{
			{
				Title:       "Define Project Scope",
				Description: "Define a simple feature or mini-product to build together",
				SuccessCriteria: []string{
					"Agree on a specific, achievable project scope",
					"Define clear success metrics for the deliverable",
					"Set realistic timeline and milestones",
				},
			},
			{
				Title:       "Setup Development Environment",
				Description: "Set up shared development environment (GitHub, Figma, etc.)",
				SuccessCriteria: []string{
					"Create shared repository with proper access permissions",
					"Set up project structure and initial files",
					"Establish communication channels and tools",
				},
			},
			{
				Title:       "Divide Responsibilities",
				Description: "Divide responsibilities based on each person's strengths",
				SuccessCriteria: []string{
					"Clearly define each person's responsibilities",
					"Align tasks with individual strengths and expertise",
					"Establish dependencies and handoff points",
				},
			},
			{
				Title:       "Execute Sprint",
				Description: "Work together over 2-3 days with regular check-ins",
				SuccessCriteria: []string{
					"Complete daily check-ins to discuss progress",
					"Meet individual commitments and deadlines",
					"Collaborate effectively on shared components",
				},
			},
			{
				Title:       "Present and Reflect",
				Description: "Present the final result and reflect on the collaboration",
				SuccessCriteria: []string{
					"Deliver working prototype or feature",
					"Present results to each other with demo",
					"Complete retrospective on collaboration process",
				},
			},
		},
		Outcome: "Test working dynamics, project management skills, and ability to deliver together",
		SuccessCriteria: []string{
			"Deliver a working prototype or feature within the timeframe",
			"Maintain clear communication with daily check-ins",
			"Successfully divide tasks and meet individual commitments",
			"Resolve at least one disagreement or challenge collaboratively",
			"Complete joint retrospective identifying strengths and areas for improvement",
		},
	},
	{
		Id:          3,
		Title:       "Business Case Study",
		Description: "Analyze a real business problem and present solutions together to evaluate strategic thinking.",
		Duration:    "4-5 hours",
		Difficulty:  entity.DifficultyMedium,
		Category:    entity.CategoryBusiness,
		Steps: []entity.CollabStep{
			{
				Title:       "Select Case Study",
				Description: "Choose a relevant business case study or real company challenge",
				SuccessCriteria: []string{
					"Select a case study relevant to your industry or interests",
					"Ensure sufficient complexity to demonstrate analytical skills",
					"Agree on the scope and focus areas for analysis",
				},
			},
			{
				Title:       "Independent Research",
				Description: "Research the problem independently (1-2 hours)",
				SuccessCriteria: []string{
					"Complete 1-2 hours of focused research",
					"Gather data from multiple credible sources",
					"Document key findings and initial insights",
				},
			},
			{
				Title:       "Collaborative Discussion",
				Description: "Meet to discuss findings and brainstorm solutions",
				SuccessCriteria: []string{
					"Share research findings openly and thoroughly",
					"Generate multiple solution alternatives together",
					"Build on each other's ideas constructively",
				},
			},
			{
				Title:       "Create Joint Presentation",
				Description: "Create a joint presentation or document with recommendations",
				SuccessCriteria: []string{
					"Produce professional presentation with 3-5 recommendations",
					"Include supporting data and rationale for each recommendation",
					"Demonstrate clear problem-solution alignment",
				},
			},
			{
				Title:       "Present and Evaluate",
				Description: "Present to each other and discuss different approaches",
				SuccessCriteria: []string{
					"Deliver clear, compelling presentation of findings",
					"Discuss alternative approaches and trade-offs",
					"Provide constructive feedback on analytical process",
				},
			},
		},
		Outcome: "Evaluate analytical thinking, business acumen, and collaborative problem-solving",
		SuccessCriteria: []string{
			"Complete individual research with documented findings",
			"Produce joint presentation with 3-5 actionable recommendations",
			"Demonstrate understanding of business fundamentals and market dynamics",
			"Show ability to synthesize different perspectives into cohesive solutions",
			"Provide constructive feedback on each other's analytical approach",
		},
	},
	{
		Id:          4,
		Title:       "Startup Pitch Workshop",
		Description: "Develop and refine each other's startup ideas through structured feedback sessions.",
		Duration:    "3-4 hours",
		Difficulty:  entity.DifficultyEasy,
		Category:    entity.CategoryBusiness,
		Steps: []entity.CollabStep{
			{
				Title:       "Prepare Initial Pitches",
				Description: "Each person prepares a 5-minute pitch of their startup idea",
				SuccessCriteria: []string{
					"Create structured 5-minute pitch covering problem, solution, market",
					"Include visual aids or slides if helpful",
					"Practice timing to stay within limit",
				},
			},
			{
				Title:       "Present to Each Other",
				Description: "Present pitches to each other",
				SuccessCriteria: []string{
					"Deliver clear, engaging presentation within time limit",
					"Maintain good eye contact and confident delivery",
					"Allow time for clarifying questions",
				},
			},
			{
				Title:       "Provide Structured Feedback",
				Description: "Provide structured feedback using a framework (problem, solution, market, etc.)",
				SuccessCriteria: []string{
					"Use consistent framework to evaluate each pitch",
					"Provide specific, actionable feedback on each component",
					"Balance constructive criticism with positive observations",
				},
			},
			{
				Title:       "Collaborative Improvement",
				Description: "Brainstorm improvements and iterations together",
				SuccessCriteria: []string{
					"Generate specific improvement suggestions for each pitch",
					"Collaborate on refining value propositions",
					"Identify potential synergies between ideas",
				},
			},
			{
				Title:       "Re-pitch with Improvements",
				Description: "Re-pitch with incorporated feedback",
				SuccessCriteria: []string{
					"Incorporate feedback into revised pitch",
					"Demonstrate improved clarity and compelling narrative",
					"Show receptiveness to feedback and ability to iterate",
				},
			},
		},
		Outcome: "Assess communication skills, receptiveness to feedback, and strategic thinking",
		SuccessCriteria: []string{
			"Deliver clear, compelling 5-minute pitches for both ideas",
			"Provide structured feedback covering problem, solution, market, and execution",
			"Incorporate feedback into improved second pitch versions",
			"Demonstrate active listening and openness to criticism",
			"Identify potential synergies between the two startup concepts",
		},
	},
	{
		Id:          5,
		Title:       "Technical Architecture Design",
		Description: "Collaborate on designing the technical architecture for a hypothetical or real project.",
		Duration:    "3-4 hours",
		Difficulty:  entity.DifficultyHard,
		Category:    entity.CategoryTechnical,
		Steps: []entity.CollabStep{
			{
				Title:       "Define System Requirements",
				Description: "Define requirements for a technical system (e.g., social media app)",
				SuccessCriteria: []string{
					"Document functional and non-functional requirements",
					"Define expected scale and performance metrics",
					"Identify key constraints and assumptions",
				},
			},
			{
				Title:       "Individual Architecture Sketches",
				Description: "Individually sketch initial architecture ideas",
				SuccessCriteria: []string{
					"Create detailed architecture diagram with major components",
					"Consider scalability, security, and performance",
					"Document technology choices and rationale",
				},
			},
			{
				Title:       "Share and Discuss Approaches",
				Description: "Share and discuss different approaches",
				SuccessCriteria: []string{
					"Present architecture clearly with visual diagrams",
					"Explain design decisions and trade-offs",
					"Ask thoughtful questions about alternative approaches",
				},
			},
			{
				Title:       "Collaborate on Unified Design",
				Description: "Collaborate on a unified architecture design",
				SuccessCriteria: []string{
					"Synthesize best elements from both approaches",
					"Reach consensus on major architectural decisions",
					"Address scalability and reliability concerns",
				},
			},
			{
				Title:       "Document Final Architecture",
				Description: "Document decisions and trade-offs made together",
				SuccessCriteria: []string{
					"Create comprehensive architecture documentation",
					"Document key decisions and rationale",
					"Include deployment and monitoring considerations",
				},
			},
		},
		Outcome: "Evaluate technical depth, system design skills, and decision-making process",
		SuccessCriteria: []string{
			"Create detailed system architecture diagram with all major components",
			"Document key technical decisions and rationale behind choices",
			"Address scalability, security, and performance considerations",
			"Demonstrate knowledge of relevant technologies and best practices",
			"Reach consensus on final design through collaborative discussion",
		},
	},
	{
		Id:          6,
		Title:       "Customer Interview Practice",
		Description: "Conduct mock customer interviews to validate a business idea and practice user research skills.",
		Duration:    "2-3 hours",
		Difficulty:  entity.DifficultyEasy,
		Category:    entity.CategoryProduct,
		Steps: []entity.CollabStep{
			{
				Title:       "Select Validation Target",
				Description: "Choose a startup idea to validate",
				SuccessCriteria: []string{
					"Select specific startup idea with clear value proposition",
					"Define target customer segment to focus on",
					"Identify key assumptions to test through interviews",
				},
			},
			{
				Title:       "Prepare Interview Guide",
				Description: "Prepare interview questions together",
				SuccessCriteria: []string{
					"Create comprehensive interview guide with 10-15 questions",
					"Include mix of open-ended and follow-up questions",
					"Focus on customer problems rather than solutions",
				},
			},
			{
				Title:       "Role-Play Setup",
				Description: "Take turns being interviewer and customer",
				SuccessCriteria: []string{
					"Define realistic customer personas for role-play",
					"Establish clear scenarios and contexts",
					"Agree on feedback format for interview performance",
				},
			},
			{
				Title:       "Conduct Mock Interviews",
				Description: "Conduct 2-3 mock interviews each",
				SuccessCriteria: []string{
					"Complete 4-6 total mock interviews with different scenarios",
					"Demonstrate effective interviewing techniques",
					"Take detailed notes during each interview",
				},
			},
			{
				Title:       "Analyze and Synthesize",
				Description: "Analyze findings and discuss insights together",
				SuccessCriteria: []string{
					"Extract 3-5 key insights about customer needs",
					"Identify patterns across multiple interviews",
					"Translate insights into actionable product recommendations",
				},
			},
		},
		Outcome: "Test user research skills, empathy, and ability to extract insights from data",
		SuccessCriteria: []string{
			"Develop comprehensive interview guide with 10-15 thoughtful questions",
			"Complete 4-6 mock interviews with realistic customer personas",
			"Extract 3-5 key insights about user needs and pain points",
			"Demonstrate effective interviewing techniques (open-ended questions, active listening)",
			"Synthesize findings into actionable recommendations for product development",
		},
	},
}
