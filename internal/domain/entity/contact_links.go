package entity

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	nonDigits         = regexp.MustCompile(`\D`)
	instagramPrefixRe = regexp.MustCompile(`(?i)^instagram\.com/`)
)

const (
	instagramBaseURL = "https://instagram.com/"
	whatsAppBaseURL  = "https://wa.me/"
	mapsCoordsURL    = "https://www.google.com/maps?q="
	mapsSearchURL    = "https://www.google.com/maps/search/?api=1&query="
)

// WhatsAppGreeting is the message a visitor's chat opens with.
func WhatsAppGreeting(listingName string) string {
	return `Olá! Vi seu anúncio "` + strings.TrimSpace(listingName) + `" e gostaria de mais informações.`
}

// DigitsOnly strips every non-digit character.
func DigitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// PhoneLink returns a tel: URI, or "" when phone has no digits.
func PhoneLink(phone string) string {
	digits := DigitsOnly(phone)
	if digits == "" {
		return ""
	}

	return "tel:" + digits
}

// WhatsAppLink returns a wa.me chat link. whatsapp is preferred and phone is
// the fallback; message, when set, prefills the chat.
func WhatsAppLink(whatsapp, phone, message string) string {
	digits := DigitsOnly(whatsapp)
	if digits == "" {
		digits = DigitsOnly(phone)
	}
	if digits == "" {
		return ""
	}

	link := whatsAppBaseURL + digits
	if message != "" {
		link += "?text=" + queryComponent(message)
	}

	return link
}

// InstagramLink normalizes a handle or profile reference into a profile URL.
// Values that already start with http:// or https:// are kept as given.
func InstagramLink(instagram string) string {
	handle := strings.TrimSpace(instagram)
	if handle == "" {
		return ""
	}
	if hasScheme(handle) {
		return handle
	}

	handle = strings.TrimPrefix(handle, "@")
	handle = instagramPrefixRe.ReplaceAllString(handle, "")

	return instagramBaseURL + handle
}

func hasScheme(link string) bool {
	return strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://")
}

// MapsLink picks the best map link for a location: the explicit maps URL,
// then coordinates, then an address search.
func MapsLink(loc Location) string {
	if explicit := strings.TrimSpace(loc.GoogleMapsURL); explicit != "" {
		if hasScheme(explicit) {
			return explicit
		}

		return "https://" + explicit
	}

	if point, ok := loc.Point(); ok {
		return mapsCoordsURL +
			strconv.FormatFloat(point.Lat(), 'f', -1, 64) + "," +
			strconv.FormatFloat(point.Lon(), 'f', -1, 64)
	}

	address := strings.TrimSpace(loc.Address)
	if address == "" {
		return ""
	}

	return mapsSearchURL + queryComponent(address)
}

// queryComponent escapes s for a query value with spaces as %20.
func queryComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ContactLinks bundles every deep link a listing exposes. Empty values mean
// the listing has nothing to link to for that channel.
type ContactLinks struct {
	Phone     string
	WhatsApp  string
	Instagram string
	Maps      string
}

// ContactLinksFor derives the deep links of a listing.
func ContactLinksFor(listing *Listing) ContactLinks {
	return ContactLinks{
		Phone:     PhoneLink(listing.Phone),
		WhatsApp:  WhatsAppLink(listing.WhatsApp, listing.Phone, WhatsAppGreeting(listing.Name)),
		Instagram: InstagramLink(listing.Instagram),
		Maps:      MapsLink(listing.Location),
	}
}
