package manager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/tria/internal/contact"
)

// User-facing alert texts.
const (
	alertEmptyName    = "Please enter a name"
	alertInvalidPhone = "Phone number must contain exactly 10 digits!"
	alertDuplicate    = "Contact with same name or phone already exists!"
)

// alertText maps a store error to the message shown to the user.
func alertText(err error) string {
	switch {
	case errors.Is(err, contact.ErrEmptyName):
		return alertEmptyName
	case errors.Is(err, contact.ErrInvalidPhone):
		return alertInvalidPhone
	case errors.Is(err, contact.ErrDuplicate):
		return alertDuplicate
	default:
		return err.Error()
	}
}

// binText reports how many contacts the bin holds.
func binText(n int) string {
	return fmt.Sprintf("Bin contains %d contact(s).", n)
}

// alertView renders a blocking alert box.
func alertView(text string) string {
	var b strings.Builder
	b.WriteString(text)
	b.WriteString("\n\n  [Enter] OK")
	return AlertBorder().Render(b.String())
}
