package domain

// Record 实习经历表单的完整内容，按用户维度存储。
// JSON 字段名同时也是数据路径语法的寻址名，修改需要同步模板绑定。
type Record struct {
	BasicInfo BasicInfo `json:"basicInfo"`
	TechStack TechStack `json:"techStack"`
	Learning  Learning  `json:"learning"`
	Projects  []Project `json:"projects"`
}

type BasicInfo struct {
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	InternshipRole string     `json:"internshipRole"`
	TeamDepartment string     `json:"teamDepartment"`
	ManagerName    string     `json:"managerName"`
	StartDate      string     `json:"startDate"`
	EndDate        string     `json:"endDate"`
	Summary        string     `json:"summary"`
	Teammates      []Teammate `json:"teammates,omitempty"`
}

type Teammate struct {
	Name string `json:"name"`
}

type TechStack struct {
	Languages     []string `json:"languages"`
	Frameworks    []string `json:"frameworks"`
	Tools         []string `json:"tools"`
	Other         string   `json:"other,omitempty"`
	Commits       string   `json:"commits,omitempty"`
	Features      string   `json:"features,omitempty"`
	LinesOfCode   int      `json:"linesOfCode,omitempty"`
	Contributions int      `json:"contributions,omitempty"`
}

type LearningEntry struct {
	Title    string `json:"title"`
	Context  string `json:"context"`
	Learning string `json:"learning"`
}

type CollaborationEntry struct {
	Title    string   `json:"title"`
	Context  string   `json:"context"`
	Learning string   `json:"learning"`
	Teams    []string `json:"teams,omitempty"`
}

type Learning struct {
	CurrentlyLearning      []string             `json:"currentlyLearning"`
	InterestedIn           []string             `json:"interestedIn"`
	TechnicalLearnings     string               `json:"technicalLearnings,omitempty"`
	SoftSkills             []LearningEntry      `json:"softSkills,omitempty"`
	CrossTeamCollaboration []CollaborationEntry `json:"crossTeamCollaboration,omitempty"`
	TechnicalLearningList  []LearningEntry      `json:"technicalLearningEntries,omitempty"`
}

type PullRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
	// Draft/Open/Merged/Closed
	Status string `json:"status"`
	Date   string `json:"date,omitempty"`
}

type Ticket struct {
	Title        string `json:"title"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Contribution string `json:"contribution"`
	Link         string `json:"link"`
}

type Doc struct {
	DocumentTitle string `json:"documentTitle"`
	Purpose       string `json:"purpose"`
	Contribution  string `json:"contribution"`
	Tags          string `json:"tags,omitempty"`
	Link          string `json:"link,omitempty"`
}

type Media struct {
	// image/diagram/workflow/video
	Type    string `json:"type"`
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type Challenge struct {
	Obstacle       string   `json:"obstacle"`
	Approach       string   `json:"approach"`
	Resolution     string   `json:"resolution"`
	LessonsLearned string   `json:"lessonsLearned"`
	Tags           []string `json:"tags"`
}

type Project struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Role          string        `json:"role"`
	Technologies  []string      `json:"technologies"`
	Outcome       string        `json:"outcome,omitempty"`
	TimelineStart string        `json:"timelineStart,omitempty"`
	TimelineEnd   string        `json:"timelineEnd,omitempty"`
	Link          string        `json:"link,omitempty"`
	PullRequests  []PullRequest `json:"pullRequests"`
	Media         []Media       `json:"media,omitempty"`
	Challenges    []Challenge   `json:"challenges,omitempty"`
	Tickets       []Ticket      `json:"tickets,omitempty"`
	Docs          []Doc         `json:"docs,omitempty"`
}
