// Package translate converts between the server's address shape and the
// UI-facing one. Everything here is pure; no I/O.
package translate

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/Hemang2208/vedicvogue-sync/internal/models"
)

const defaultLabel = "Home"

// ProfileContext supplies the per-address fields that are not stored
// server-side and must come from the profile at translation time.
type ProfileContext struct {
	FullName string
	Phone    string
}

// ToFrontend derives the UI view of one backend address. The id is the
// stringified position in the filtered list and the first entry is the
// default.
func ToFrontend(addr models.BackendAddress, index int, ctx ProfileContext) models.FrontendAddress {
	return models.FrontendAddress{
		ID:           strconv.Itoa(index),
		Type:         strings.ToLower(addr.Label),
		Name:         addr.Label,
		FullName:     ctx.FullName,
		Phone:        ctx.Phone,
		AddressLine1: joinHouseStreet(addr.HouseNumber, addr.Street),
		AddressLine2: addr.Area,
		City:         addr.City,
		State:        addr.State,
		Pincode:      addr.Zipcode,
		Country:      addr.Country,
		Landmark:     addr.Landmark,
		IsDefault:    index == 0,
	}
}

// ToBackend maps a (possibly partial) UI address back to the server shape.
// Lossy on purpose: fullName, phone and isDefault are not part of the
// server's per-address record.
func ToBackend(addr models.FrontendAddress) models.BackendAddress {
	houseNumber, street := splitAddressLine(addr.AddressLine1)
	return models.BackendAddress{
		Label:       deriveLabel(addr.Type, addr.Name),
		HouseNumber: houseNumber,
		Street:      street,
		Area:        addr.AddressLine2,
		Landmark:    addr.Landmark,
		City:        addr.City,
		State:       addr.State,
		Zipcode:     addr.Pincode,
		Country:     addr.Country,
	}
}

// FilterDeleted strips soft-deleted tombstones. This is the boundary that
// keeps them out of every UI-facing list; the server is not trusted to have
// done it already.
func FilterDeleted(addrs []models.BackendAddress) []models.BackendAddress {
	kept := make([]models.BackendAddress, 0, len(addrs))
	for _, addr := range addrs {
		if addr.IsDeleted {
			continue
		}
		kept = append(kept, addr)
	}
	return kept
}

// ToFrontendList filters tombstones and translates the survivors with
// positional ids.
func ToFrontendList(addrs []models.BackendAddress, ctx ProfileContext) []models.FrontendAddress {
	filtered := FilterDeleted(addrs)
	out := make([]models.FrontendAddress, 0, len(filtered))
	for i, addr := range filtered {
		out = append(out, ToFrontend(addr, i, ctx))
	}
	return out
}

// splitAddressLine splits on the first comma: text before it is the house
// number, the remainder the street. With no comma the whole line is street.
func splitAddressLine(line string) (houseNumber, street string) {
	before, after, found := strings.Cut(line, ",")
	if !found {
		return "", strings.TrimSpace(line)
	}
	return strings.TrimSpace(before), strings.TrimSpace(after)
}

func joinHouseStreet(houseNumber, street string) string {
	if houseNumber == "" {
		return street
	}
	return houseNumber + ", " + street
}

func deriveLabel(addrType, name string) string {
	if t := strings.TrimSpace(addrType); t != "" {
		return titleCase(t)
	}
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	return defaultLabel
}

func titleCase(s string) string {
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
