package binding

import (
	"encoding/json"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/internfolio/internfolio/internal/form"
)

// 数据绑定：把 "basicInfo.fullName" 这类路径解析成表单里的值。
// 解析永远不报错，缺段、越界、类型不符一律得到 nil。

const computedPrefix = "$computed."

var (
	arrayIndexRe = regexp.MustCompile(`^(\w+)\[(\d+)\]$`)
	pathRe       = regexp.MustCompile(`^[a-zA-Z_$][a-zA-Z0-9_$]*(\.[a-zA-Z_$][a-zA-Z0-9_$]*|\[\d+\])*$`)
)

// Context 渲染期的只读数据视图：类型化表单 + 预计算覆盖层。
// 只在渲染时构造，不落库。
type Context struct {
	Record form.Record
	// 覆盖层按完整路径短路，优先于一切解析
	Computed map[string]any

	// Record 的 JSON 视图，供逐段遍历
	data map[string]any
}

func NewContext(record form.Record) *Context {
	var data map[string]any
	// Record 全部字段都是 JSON 可编组的，这里不会失败
	raw, err := json.Marshal(record)
	if err == nil {
		_ = json.Unmarshal(raw, &data)
	}
	return &Context{
		Record:   record,
		Computed: map[string]any{},
		data:     data,
	}
}

// Resolve 解析一条数据路径，未命中返回 nil。
func (c *Context) Resolve(path string) any {
	if path == "" {
		return nil
	}

	if v, ok := c.Computed[path]; ok {
		return v
	}

	if strings.HasPrefix(path, computedPrefix) {
		return resolveComputed(strings.TrimPrefix(path, computedPrefix), c.Record)
	}

	var cur any = c.data
	for _, part := range strings.Split(path, ".") {
		if cur == nil {
			return nil
		}
		if m := arrayIndexRe.FindStringSubmatch(part); m != nil {
			idx, _ := strconv.Atoi(m[2])
			cur = indexInto(fieldOf(cur, m[1]), idx)
			continue
		}
		cur = fieldOf(cur, part)
	}
	return cur
}

// ResolveAll 批量解析 prop -> 路径 映射
func (c *Context) ResolveAll(mapping map[string]string) map[string]any {
	resolved := make(map[string]any, len(mapping))
	for propName, dataPath := range mapping {
		resolved[propName] = c.Resolve(dataPath)
	}
	return resolved
}

// HasValue 路径上是否有"有意义"的值：非空数组/对象，非 nil、非空串
func (c *Context) HasValue(path string) bool {
	switch v := c.Resolve(path).(type) {
	case nil:
		return false
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	case string:
		return v != ""
	default:
		return true
	}
}

// EvaluateCondition 条件渲染判断。未知操作符视为通过。
func (c *Context) EvaluateCondition(path, operator string, literal any) bool {
	resolved := c.Resolve(path)
	switch operator {
	case "exists":
		return resolved != nil
	case "empty":
		return isEmpty(resolved)
	case "equals":
		return looseEqual(resolved, literal)
	case "notEquals":
		return !looseEqual(resolved, literal)
	case "greaterThan":
		a, ok1 := toNumber(resolved)
		b, ok2 := toNumber(literal)
		return ok1 && ok2 && a > b
	case "lessThan":
		a, ok1 := toNumber(resolved)
		b, ok2 := toNumber(literal)
		return ok1 && ok2 && a < b
	default:
		return true
	}
}

// IsValidPath 校验路径语法：标识符、点访问、一层数字下标
func IsValidPath(path string) bool {
	if path == "" {
		return false
	}
	if strings.HasPrefix(path, computedPrefix) {
		return true
	}
	return pathRe.MatchString(path)
}

func fieldOf(v any, key string) any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}

func indexInto(v any, idx int) any {
	arr, ok := v.([]any)
	if !ok || idx < 0 || idx >= len(arr) {
		return nil
	}
	return arr[idx]
}

func isEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	case string:
		return val == ""
	case bool:
		return !val
	default:
		n, ok := toNumber(v)
		return ok && n == 0
	}
}

// looseEqual 数字按数值比较，其余按深度相等比较。
// 计算值是 int 而 JSON 字面量是 float64，不能直接 ==。
func looseEqual(a, b any) bool {
	if an, ok := toNumber(a); ok {
		bn, ok2 := toNumber(b)
		return ok2 && an == bn
	}
	return reflect.DeepEqual(a, b)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
