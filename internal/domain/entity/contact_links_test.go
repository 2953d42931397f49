package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhoneLink(t *testing.T) {
	assert.Equal(t, "tel:11999990000", PhoneLink("(11) 99999-0000"))
	assert.Empty(t, PhoneLink("n/a"))
}

func TestWhatsAppLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/5511988887777", WhatsAppLink("+55 (11) 98888-7777", "11 3333-4444", ""))
	assert.Equal(t, "https://wa.me/1133334444", WhatsAppLink("", "11 3333-4444", ""))
	assert.Equal(t, "https://wa.me/1133334444?text=Ol%C3%A1%20tudo%20bem", WhatsAppLink("", "1133334444", "Olá tudo bem"))
	assert.Empty(t, WhatsAppLink("", "", ""))
}

func TestInstagramLink(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"@pousadasol", "https://instagram.com/pousadasol"},
		{"pousadasol", "https://instagram.com/pousadasol"},
		{"Instagram.com/pousadasol", "https://instagram.com/pousadasol"},
		{"https://www.instagram.com/pousadasol/", "https://www.instagram.com/pousadasol/"},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InstagramLink(tt.in), tt.in)
	}
}

func TestMapsLink(t *testing.T) {
	lat, lng := -22.9519, -43.2105

	assert.Equal(t, "https://maps.app.goo.gl/abc",
		MapsLink(Location{GoogleMapsURL: "maps.app.goo.gl/abc", Latitude: &lat, Longitude: &lng}))
	assert.Equal(t, "http://maps.example/x", MapsLink(Location{GoogleMapsURL: "http://maps.example/x"}))
	assert.Equal(t, "https://www.google.com/maps?q=-22.9519,-43.2105",
		MapsLink(Location{Address: "Cristo Redentor", Latitude: &lat, Longitude: &lng}))
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Rua%20das%20Flores%2C%2010",
		MapsLink(Location{Address: "Rua das Flores, 10"}))
	assert.Empty(t, MapsLink(Location{}))
}

func TestContactLinksFor(t *testing.T) {
	links := ContactLinksFor(&Listing{
		Name:      "Sol",
		Phone:     "11 3333-4444",
		Instagram: "@sol",
		Location:  Location{Address: "Centro"},
	})

	assert.Equal(t, ContactLinks{
		Phone:     "tel:1133334444",
		WhatsApp:  "https://wa.me/1133334444?text=Ol%C3%A1%21%20Vi%20seu%20an%C3%BAncio%20%22Sol%22%20e%20gostaria%20de%20mais%20informa%C3%A7%C3%B5es.",
		Instagram: "https://instagram.com/sol",
		Maps:      "https://www.google.com/maps/search/?api=1&query=Centro",
	}, links)
}

func TestWhatsAppGreeting(t *testing.T) {
	assert.Equal(t, `Olá! Vi seu anúncio "Pousada Sol" e gostaria de mais informações.`, WhatsAppGreeting(" Pousada Sol "))
}
