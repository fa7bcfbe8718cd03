package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeID_String(t *testing.T) {
	id := TypeID{PkgPath: "example.com/forms", Name: "LoginForm"}
	assert.Equal(t, "example.com/forms.LoginForm", id.String())

	assert.Equal(t, "LoginForm", TypeID{Name: "LoginForm"}.String())
}

func TestFieldPath(t *testing.T) {
	root := NewFieldPath()
	assert.Equal(t, "", root.String())
	assert.Equal(t, "", root.Name())

	p := root.Field("Credentials")
	q := p.Field("Username")
	r := p.Field("Password")

	assert.Equal(t, "Credentials", p.String())
	assert.Equal(t, "Credentials.Username", q.String())
	assert.Equal(t, "Credentials.Password", r.String())
	assert.Equal(t, "Username", q.Name())
}

func TestDriverModel_ImplName(t *testing.T) {
	m := DriverModel{ID: TypeID{Name: "LoginForm"}}
	assert.Equal(t, "LoginFormDriverImpl", m.ImplName())
}
