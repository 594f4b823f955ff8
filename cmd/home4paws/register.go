// cmd/home4paws/register.go
package main

import (
	"home4paws-cli/internal/forms"
	"home4paws-cli/internal/models"
	"home4paws-cli/internal/prompt"
)

func promptRegistration(p *prompt.Prompter) (models.RegisterRequest, error) {
	var req models.RegisterRequest
	var err error

	if req.Username, err = p.Line("Username"); err != nil {
		return req, err
	}
	if req.Email, err = p.Line("Email"); err != nil {
		return req, err
	}
	if req.Password, err = p.Password("Password"); err != nil {
		return req, err
	}
	if req.FirstName, err = p.Line("First name (optional)"); err != nil {
		return req, err
	}
	if req.LastName, err = p.Line("Last name (optional)"); err != nil {
		return req, err
	}

	phone, err := promptPhone(p, "Phone (optional)", false)
	if err != nil {
		return req, err
	}
	req.Phone = phone
	return req, nil
}

// promptPhone keeps asking until the input survives the digits-only,
// ten-digit rule (or, when not required, is left empty).
func promptPhone(p *prompt.Prompter, label string, required bool) (string, error) {
	for {
		raw, err := p.Line(label)
		if err != nil {
			return "", err
		}
		if raw == "" && !required {
			return "", nil
		}
		phone, msg := forms.NormalizePhone(raw)
		if msg != "" {
			p.Error(msg)
			continue
		}
		if phone == "" && required {
			p.Error("Phone number is required.")
			continue
		}
		return phone, nil
	}
}
