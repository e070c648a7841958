package domain

type JobPosting struct {
	ID          int
	Title       string
	Description string
	Budget      string
	Skills      []string
	Type        string
	Duration    string
	Proposals   int
}

// SampleJobs is the catalog shown until the backend exposes job search.
func SampleJobs() []JobPosting {
	return []JobPosting{
		{
			ID:          1,
			Title:       "Frontend Developer Needed",
			Description: "Build responsive React components for e-commerce platform. Experience with modern JavaScript frameworks required.",
			Budget:      "$500-$1000",
			Skills:      []string{"React", "JavaScript", "CSS", "HTML5"},
			Type:        "Fixed Price",
			Duration:    "2-4 weeks",
			Proposals:   12,
		},
		{
			ID:          2,
			Title:       "Mobile App UI/UX Design",
			Description: "Design modern UI for fitness tracking mobile application. Must provide wireframes and prototypes.",
			Budget:      "$300-$700",
			Skills:      []string{"Figma", "UI/UX", "Mobile Design", "Prototyping"},
			Type:        "Hourly",
			Duration:    "1-2 months",
			Proposals:   8,
		},
		{
			ID:          3,
			Title:       "Django Backend API Development",
			Description: "Create REST APIs for SaaS platform with PostgreSQL. Experience with Django REST Framework required.",
			Budget:      "$800-$1500",
			Skills:      []string{"Django", "Python", "REST API", "PostgreSQL"},
			Type:        "Fixed Price",
			Duration:    "3-6 weeks",
			Proposals:   5,
		},
		{
			ID:          4,
			Title:       "Full Stack Web Application",
			Description: "Develop complete web application with React frontend and Node.js backend. Database design experience preferred.",
			Budget:      "$1200-$2500",
			Skills:      []string{"React", "Node.js", "MongoDB", "Express"},
			Type:        "Fixed Price",
			Duration:    "1-2 months",
			Proposals:   15,
		},
		{
			ID:          5,
			Title:       "WordPress E-commerce Site",
			Description: "Build WooCommerce website with custom theme development. Payment gateway integration required.",
			Budget:      "$400-$800",
			Skills:      []string{"WordPress", "PHP", "WooCommerce", "CSS"},
			Type:        "Hourly",
			Duration:    "2-3 weeks",
			Proposals:   20,
		},
		{
			ID:          6,
			Title:       "Data Analysis Dashboard",
			Description: "Create interactive dashboard for business metrics using Python and visualization libraries.",
			Budget:      "$600-$1200",
			Skills:      []string{"Python", "Pandas", "Matplotlib", "Data Analysis"},
			Type:        "Fixed Price",
			Duration:    "3-5 weeks",
			Proposals:   7,
		},
	}
}

func FindJob(jobs []JobPosting, id int) (JobPosting, bool) {
	for _, job := range jobs {
		if job.ID == id {
			return job, true
		}
	}
	return JobPosting{}, false
}
