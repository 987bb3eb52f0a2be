package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "-"},
		{"   ", "-"},
		{"NaN", "-"},
		{"4", "4"},
		{"4.0", "4"},
		{"4.5", "4.5"},
		{"4.50", "4.5"},
		{"94.567", "94.57"},
		{"-3.20", "-3.2"},
		{"0", "0"},
		{"高一(2)班", "高一(2)班"},
		{"20240101", "20240101"},
		{"absent", "absent"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatValue(c.in), "FormatValue(%q)", c.in)
	}
}

func TestRecordDisplay(t *testing.T) {
	rec := Record{
		Columns: []string{"姓名", "总分"},
		Values:  map[string]string{"姓名": "张三", "总分": "94.50"},
	}
	assert.Equal(t, "张三", rec.Display("姓名"))
	assert.Equal(t, "94.5", rec.Display("总分"))
	assert.Equal(t, "-", rec.Display("缺失列"))
}

func TestResolveRolesAlias(t *testing.T) {
	columns := []string{"班级/Class", "姓名", "听力", "学号", "总分"}
	roles := ResolveRoles(columns)

	assert.Equal(t, Assignment{Column: 1}, roles[RoleName])
	assert.Equal(t, Assignment{Column: 3}, roles[RoleCode])
	assert.Equal(t, Assignment{Column: 0}, roles[RoleClass])

	details := DetailColumns(columns, roles)
	assert.Equal(t, []int{2, 4}, details)
}

func TestResolveRolesPositional(t *testing.T) {
	columns := []string{"студент", "номер", "группа", "балл"}
	roles := ResolveRoles(columns)

	assert.Equal(t, Assignment{Column: 0, Positional: true}, roles[RoleName])
	assert.Equal(t, Assignment{Column: 1, Positional: true}, roles[RoleCode])
	assert.Equal(t, Assignment{Column: 2, Positional: true}, roles[RoleClass])
	assert.Equal(t, []int{3}, DetailColumns(columns, roles))
}

func TestResolveRolesTooFewColumns(t *testing.T) {
	columns := []string{"姓名", "总分"}
	roles := ResolveRoles(columns)

	assert.Equal(t, Assignment{Column: 0}, roles[RoleName])
	assert.Equal(t, Assignment{Column: 1, Positional: true}, roles[RoleCode])
	assert.True(t, roles[RoleClass].Missing)

	rec := Record{Columns: columns, Values: map[string]string{"姓名": "李四", "总分": "88"}}
	assert.Equal(t, "-", roles.Value(RoleClass, columns, rec))
	assert.Equal(t, "李四", roles.Value(RoleName, columns, rec))
}

func TestResolveRolesTrimsColumnNames(t *testing.T) {
	roles := ResolveRoles([]string{" 姓名 ", "学号", "班级"})
	assert.Equal(t, Assignment{Column: 0}, roles[RoleName])
}
