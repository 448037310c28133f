package config

import "folio/domain"

// DefaultContent returns the statically configured payload for every site
// section. These values answer public reads whenever the store is
// unconfigured, empty for a key, or erroring. They are owned by deployment
// configuration and never mutated at runtime.
func DefaultContent() domain.FallbackContent {
	return domain.FallbackContent{
		Hero: domain.Hero{
			Name:        "Noa Kaikei",
			Title:       "Security Researcher & Software Engineer",
			Bio:         "I build backend systems and study how they break.",
			Description: "Research, projects and notes on distributed systems, applied cryptography and web security.",
			TalksAbout:  []string{"distributed systems", "web security", "go"},
		},
		Education: []domain.EducationEntry{
			{
				Institution: "Tokyo Institute of Technology",
				Degree:      "M.Eng.",
				Field:       "Computer Science",
				StartYear:   2016,
				EndYear:     2018,
			},
		},
		Certifications: []domain.Certification{
			{Name: "OSCP", Issuer: "Offensive Security", IssuedAt: "2021-03"},
			{Name: "CKA", Issuer: "Cloud Native Computing Foundation", IssuedAt: "2022-11"},
		},
		SocialLinks: []domain.SocialLink{
			{Platform: "github", URL: "https://github.com/kaikei", Label: "GitHub"},
			{Platform: "linkedin", URL: "https://www.linkedin.com/in/kaikei", Label: "LinkedIn"},
			{Platform: "orcid", URL: "https://orcid.org/0000-0002-1825-0097", Label: "ORCID"},
			{Platform: "medium", URL: "https://medium.com/@kaikei", Label: "Medium"},
		},
		Recommendations: []domain.Recommendation{
			{
				Author: "Akira Sato",
				Role:   "Engineering Manager",
				Text:   "Rigorous engineer with a rare instinct for failure modes.",
				Date:   "2024-06",
			},
		},
		TechStack: []domain.TechStackGroup{
			{Category: "Languages", Items: []string{"Go", "TypeScript", "Python", "Rust"}},
			{Category: "Infrastructure", Items: []string{"Kubernetes", "PostgreSQL", "Redis", "Terraform"}},
			{Category: "Observability", Items: []string{"Prometheus", "Grafana", "OpenTelemetry"}},
		},
		Volunteering: []domain.VolunteeringEntry{
			{
				Organization: "OWASP Tokyo",
				Role:         "Chapter volunteer",
				StartYear:    2020,
				Description:  "Workshops on secure coding for local meetups.",
			},
		},
		WorkExperience: []domain.WorkExperienceEntry{
			{
				Company:    "Curio Systems",
				Role:       "Senior Backend Engineer",
				Start:      "2021-04",
				Highlights: []string{"Led migration to event-driven ingestion", "On-call owner for the storage tier"},
			},
			{
				Company: "Freelance",
				Role:    "Security Consultant",
				Start:   "2018-10",
				End:     "2021-03",
			},
		},
		Stats: domain.SiteStats{
			Projects:        18,
			Publications:    7,
			Citations:       112,
			YearsExperience: 8,
		},
		MetaTags: domain.MetaTags{
			Title:       "Noa Kaikei — Security Research & Engineering",
			Description: "Personal site: research, projects, blog and contact.",
			Keywords:    []string{"security", "research", "go", "backend"},
			OGImage:     "/static/og-card.png",
		},
		PersonalNote: domain.PersonalNote{
			Text: "This site is intentionally boring technology: one binary, one database, static fallbacks for everything.",
		},
		SecurityApproach: domain.SecurityApproach{
			Text: "All admin surfaces sit behind signed sessions; public pages never require the database to be up.",
		},
		Hobbies: []domain.Hobby{
			{Title: "Bouldering", Description: "V4 on a good day.", Tags: []string{"outdoors"}},
			{Title: "Film photography", Description: "Mostly broken light meters.", Tags: []string{"analog"}},
		},
	}
}
