package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("ali.veli"))
	assert.True(t, IsValidUsername("depo_admin-2"))
	assert.False(t, IsValidUsername("ab"))
	assert.False(t, IsValidUsername("Ali.Veli"))
	assert.False(t, IsValidUsername("ali veli"))
	assert.False(t, IsValidUsername(""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("gizli12!"))
	assert.False(t, IsValidPassword("kisa1!"))
	assert.False(t, IsValidPassword("harfsiz123456"))
	assert.False(t, IsValidPassword("Sadeceharfler!"))
	assert.False(t, IsValidPassword("noSpecial123"))
}

func TestIsValidFullname(t *testing.T) {
	assert.True(t, IsValidFullname("Ali Veli"))
	assert.True(t, IsValidFullname("Gül İşçi-Öztürk"))
	assert.False(t, IsValidFullname(""))
	assert.False(t, IsValidFullname("Ali 123"))
}
