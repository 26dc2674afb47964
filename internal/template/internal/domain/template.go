package domain

// Template 一份完整的模板：组件树 + 主题 + 发布信息。
// 对外持久化格式见 schema 包。
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Author      string `json:"author"`
	AuthorID    int64  `json:"authorId"`
	Version     string `json:"version"`

	Thumbnail string   `json:"thumbnail,omitempty"`
	Tags      []string `json:"tags"`
	Category  string   `json:"category,omitempty"`

	Structure []Node `json:"structure"`
	Theme     Theme  `json:"theme"`

	IsPublic   bool `json:"isPublic"`
	IsFeatured bool `json:"isFeatured"`

	UsageCount int64 `json:"usageCount"`
	LikesCount int64 `json:"likesCount"`

	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

func (t Template) Clone() Template {
	res := t
	res.Tags = append([]string(nil), t.Tags...)
	res.Structure = CloneNodes(t.Structure)
	return res
}
