package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	employeedomain "github.com/skillhive/workforce/internal/employee/domain"
	mentorshipdomain "github.com/skillhive/workforce/internal/mentorship/domain"
	skilldomain "github.com/skillhive/workforce/internal/skill/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnsureDemoData loads the demo directory, skill catalog, mentorship
// profiles and a few active pairs so a fresh environment is explorable
// immediately. It is a no-op when employees already exist.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&employeedomain.Employee{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		if err := seedDepartments(tx); err != nil {
			return err
		}
		if err := seedSkills(tx); err != nil {
			return err
		}
		if err := seedEmployees(tx); err != nil {
			return err
		}
		return seedPairs(tx, node)
	})
}

func seedDepartments(tx *gorm.DB) error {
	departments := []employeedomain.Department{
		{ID: "DEPT001", Name: "Engineering", Description: "Software Development"},
		{ID: "DEPT002", Name: "Data Science", Description: "ML and Analytics"},
		{ID: "DEPT003", Name: "Product", Description: "Product Management"},
		{ID: "DEPT004", Name: "Design", Description: "UX/UI Design"},
		{ID: "DEPT005", Name: "Operations", Description: "IT Operations"},
	}
	return tx.Create(&departments).Error
}

func seedSkills(tx *gorm.DB) error {
	skills := []skilldomain.Skill{
		{ID: "SKILL001", Name: "Python", Category: "Programming"},
		{ID: "SKILL002", Name: "JavaScript", Category: "Programming"},
		{ID: "SKILL003", Name: "React", Category: "Frontend"},
		{ID: "SKILL004", Name: "Node.js", Category: "Backend"},
		{ID: "SKILL005", Name: "AWS", Category: "Cloud"},
		{ID: "SKILL006", Name: "Azure", Category: "Cloud"},
		{ID: "SKILL007", Name: "Machine Learning", Category: "Data Science"},
		{ID: "SKILL008", Name: "Data Analysis", Category: "Data Science"},
		{ID: "SKILL009", Name: "Leadership", Category: "Soft Skills"},
		{ID: "SKILL010", Name: "System Design", Category: "Architecture"},
		{ID: "SKILL011", Name: "Docker", Category: "DevOps"},
		{ID: "SKILL012", Name: "Kubernetes", Category: "DevOps"},
		{ID: "SKILL013", Name: "SQL", Category: "Database"},
		{ID: "SKILL014", Name: "Product Strategy", Category: "Product"},
		{ID: "SKILL015", Name: "UI/UX Design", Category: "Design"},
	}
	return tx.Create(&skills).Error
}

type demoEmployee struct {
	employee employeedomain.Employee
	profile  mentorshipdomain.MentorshipProfile
}

func seedEmployees(tx *gorm.DB) error {
	employees := []demoEmployee{
		{
			employee: employeedomain.Employee{
				ID: "EMP001", Name: "Dr. Sarah Chen", Role: "Principal Engineer",
				DepartmentID: "DEPT001", Level: "Principal", HireDate: date(2015, 3, 15),
				SkillsMap: datatypes.JSONMap{
					"Python": 5, "System Design": 5, "AWS": 4,
					"Leadership": 5, "Machine Learning": 4, "Docker": 4,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{
				EmployeeID: "EMP001", IsMentor: true, Capacity: 4, MenteesCount: 2,
				Rating:      4.9,
				Personality: "Patient, technical depth, great at explaining complex concepts",
			},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP002", Name: "Marcus Rodriguez", Role: "Senior Software Architect",
				DepartmentID: "DEPT001", Level: "Senior", HireDate: date(2016, 7, 20),
				SkillsMap: datatypes.JSONMap{
					"System Design": 5, "AWS": 5, "Python": 4,
					"Node.js": 4, "Kubernetes": 5, "Leadership": 4,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{
				EmployeeID: "EMP002", IsMentor: true, Capacity: 3, MenteesCount: 1,
				Rating:      4.8,
				Personality: "Strategic thinker, excellent at architecture patterns",
			},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP003", Name: "Jennifer Wu", Role: "Lead Data Scientist",
				DepartmentID: "DEPT002", Level: "Senior", HireDate: date(2017, 1, 10),
				SkillsMap: datatypes.JSONMap{
					"Machine Learning": 5, "Python": 5, "Data Analysis": 5,
					"SQL": 4, "AWS": 3,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{
				EmployeeID: "EMP003", IsMentor: true, Capacity: 3, MenteesCount: 2,
				Rating:      4.7,
				Personality: "Research-oriented, loves teaching ML concepts",
			},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP004", Name: "David Kim", Role: "Senior Frontend Engineer",
				DepartmentID: "DEPT001", Level: "Senior", HireDate: date(2018, 5, 12),
				SkillsMap: datatypes.JSONMap{
					"React": 5, "JavaScript": 5, "UI/UX Design": 4,
					"System Design": 3, "Node.js": 3,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{
				EmployeeID: "EMP004", IsMentor: true, Capacity: 4, MenteesCount: 1,
				Rating:      4.6,
				Personality: "Creative, great at UI/UX mentoring",
			},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP005", Name: "Aisha Patel", Role: "Senior Product Manager",
				DepartmentID: "DEPT003", Level: "Senior", HireDate: date(2017, 9, 1),
				SkillsMap: datatypes.JSONMap{
					"Product Strategy": 5, "Leadership": 5,
					"Data Analysis": 4, "UI/UX Design": 3,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{
				EmployeeID: "EMP005", IsMentor: true, Capacity: 3, MenteesCount: 2,
				Rating:      4.8,
				Personality: "User-focused, strategic, excellent communicator",
			},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP010", Name: "Alex Thompson", Role: "Software Engineer",
				DepartmentID: "DEPT001", Level: "Mid", HireDate: date(2021, 3, 15),
				SkillsMap: datatypes.JSONMap{
					"Python": 3, "React": 3, "SQL": 3, "AWS": 2,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{EmployeeID: "EMP010"},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP011", Name: "Priya Sharma", Role: "Data Analyst",
				DepartmentID: "DEPT002", Level: "Mid", HireDate: date(2021, 6, 20),
				SkillsMap: datatypes.JSONMap{
					"Python": 3, "Data Analysis": 4, "SQL": 4, "Machine Learning": 2,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{EmployeeID: "EMP011"},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP012", Name: "James Wilson", Role: "Frontend Developer",
				DepartmentID: "DEPT001", Level: "Mid", HireDate: date(2022, 1, 10),
				SkillsMap: datatypes.JSONMap{
					"JavaScript": 4, "React": 3, "UI/UX Design": 2,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{EmployeeID: "EMP012"},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP020", Name: "Emma Garcia", Role: "Junior Software Engineer",
				DepartmentID: "DEPT001", Level: "Junior", HireDate: date(2024, 1, 15),
				SkillsMap: datatypes.JSONMap{
					"Python": 2, "JavaScript": 2, "SQL": 2,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{EmployeeID: "EMP020"},
		},
		{
			employee: employeedomain.Employee{
				ID: "EMP021", Name: "Michael Chang", Role: "Junior Data Analyst",
				DepartmentID: "DEPT002", Level: "Junior", HireDate: date(2024, 3, 1),
				SkillsMap: datatypes.JSONMap{
					"Python": 2, "SQL": 3, "Data Analysis": 2,
				},
			},
			profile: mentorshipdomain.MentorshipProfile{EmployeeID: "EMP021"},
		},
	}

	for _, entry := range employees {
		if err := tx.Create(&entry.employee).Error; err != nil {
			return err
		}
		if err := tx.Create(&entry.profile).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedPairs(tx *gorm.DB, node *snowflake.Node) error {
	start := time.Now().UTC().AddDate(0, 0, -90)
	pairs := []mentorshipdomain.MentorshipMatch{
		{
			ID: node.Generate(), MentorID: "EMP001", MenteeID: "EMP020",
			Score:      85,
			FocusAreas: datatypes.JSONSlice[string]{"Python", "System Design", "Career Growth"},
			Status:     mentorshipdomain.MatchStatusActive,
			CreatedAt:  start,
		},
		{
			ID: node.Generate(), MentorID: "EMP003", MenteeID: "EMP011",
			Score:      90,
			FocusAreas: datatypes.JSONSlice[string]{"Machine Learning", "Python", "Data Science"},
			Status:     mentorshipdomain.MatchStatusActive,
			CreatedAt:  start.AddDate(0, 0, 15),
		},
		{
			ID: node.Generate(), MentorID: "EMP004", MenteeID: "EMP012",
			Score:      80,
			FocusAreas: datatypes.JSONSlice[string]{"React", "Frontend Architecture", "UI/UX"},
			Status:     mentorshipdomain.MatchStatusActive,
			CreatedAt:  start.AddDate(0, 0, 30),
		},
	}
	return tx.Create(&pairs).Error
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}
