package binding

import (
	"math"
	"time"

	"github.com/internfolio/internfolio/internal/form"
)

// $computed 命名空间下的聚合计算，名字固定，未知返回 nil。
func resolveComputed(name string, rec form.Record) any {
	switch name {
	case "projectCount":
		return len(rec.Projects)
	case "techStackCount":
		return len(rec.TechStack.Languages) +
			len(rec.TechStack.Frameworks) +
			len(rec.TechStack.Tools)
	case "totalPRs":
		total := 0
		for _, p := range rec.Projects {
			total += len(p.PullRequests)
		}
		return total
	case "totalContributions":
		return rec.TechStack.Contributions
	case "durationDays":
		start, end, ok := parseDates(rec.BasicInfo.StartDate, rec.BasicInfo.EndDate)
		if !ok {
			return 0
		}
		return int(math.Ceil(end.Sub(start).Hours() / 24))
	case "durationMonths":
		start, end, ok := parseDates(rec.BasicInfo.StartDate, rec.BasicInfo.EndDate)
		if !ok {
			return 0
		}
		months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
		// 两个日期都在时至少算 1 个月，顺序颠倒也一样，是历史行为
		if months < 1 {
			months = 1
		}
		return months
	case "allTechnologies":
		all := make([]string, 0,
			len(rec.TechStack.Languages)+len(rec.TechStack.Frameworks)+len(rec.TechStack.Tools))
		all = append(all, rec.TechStack.Languages...)
		all = append(all, rec.TechStack.Frameworks...)
		all = append(all, rec.TechStack.Tools...)
		return all
	case "learningCount":
		return len(rec.Learning.CurrentlyLearning) + len(rec.Learning.InterestedIn)
	default:
		return nil
	}
}

func parseDates(startStr, endStr string) (start, end time.Time, ok bool) {
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, false
	}
	start, err := parseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = parseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// AvailablePaths 属性面板里路径联想用的固定清单
func AvailablePaths() []string {
	return []string{
		"basicInfo.fullName",
		"basicInfo.email",
		"basicInfo.internshipRole",
		"basicInfo.teamDepartment",
		"basicInfo.managerName",
		"basicInfo.startDate",
		"basicInfo.endDate",
		"basicInfo.summary",
		"basicInfo.teammates",

		"techStack.languages",
		"techStack.frameworks",
		"techStack.tools",
		"techStack.other",
		"techStack.commits",
		"techStack.features",
		"techStack.linesOfCode",
		"techStack.contributions",

		"learning.currentlyLearning",
		"learning.interestedIn",
		"learning.technicalLearnings",
		"learning.softSkills",
		"learning.crossTeamCollaboration",
		"learning.technicalLearningEntries",

		"projects",

		"$computed.projectCount",
		"$computed.techStackCount",
		"$computed.totalPRs",
		"$computed.totalContributions",
		"$computed.durationDays",
		"$computed.durationMonths",
		"$computed.allTechnologies",
		"$computed.learningCount",
	}
}
