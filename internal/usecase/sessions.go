package usecase

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"agroclima_portal/internal/domain/entities"
)

// Session tier derivation.
//
// The external_reference string is set by this portal at checkout time and
// echoed back by Mercado Pago, which makes it the most trustworthy signal.
// Resource metadata comes next; free-text plan descriptions are a
// last-resort heuristic for older checkout paths.

var (
	sessionsTokenPattern = regexp.MustCompile(`(?:^|[|&])sessions=(\d+)`)
	sessionsTextPattern  = regexp.MustCompile(`(\d+)\s*sess`)
)

// DeriveSessions resolves the purchased session tier from the correlation
// reference, the resource metadata and any free-text plan descriptions,
// in that order. It returns ok=false when no source yields a valid tier;
// callers must then keep the user's currently recorded tier.
func DeriveSessions(externalReference string, metadata map[string]any, texts ...string) (int, bool) {
	if n, ok := sessionsFromReference(externalReference); ok {
		return n, true
	}
	if n, ok := sessionsFromMetadata(metadata); ok {
		return n, true
	}
	for _, text := range texts {
		if n, ok := sessionsFromText(text); ok {
			return n, true
		}
	}
	return 0, false
}

func sessionsFromReference(ref string) (int, bool) {
	m := sessionsTokenPattern.FindStringSubmatch(ref)
	if len(m) < 2 {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || !entities.IsValidSessionTier(n) {
		return 0, false
	}
	return n, true
}

func sessionsFromMetadata(metadata map[string]any) (int, bool) {
	v, ok := metadata["sessions"]
	if !ok {
		return 0, false
	}

	var n int
	switch t := v.(type) {
	case float64:
		n = int(t)
	case int:
		n = t
	case json.Number:
		i, err := t.Int64()
		if err != nil {
			return 0, false
		}
		n = int(i)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		n = i
	default:
		return 0, false
	}

	if !entities.IsValidSessionTier(n) {
		return 0, false
	}
	return n, true
}

func sessionsFromText(text string) (int, bool) {
	t := strings.ToLower(text)
	if strings.Contains(t, "personalizado") {
		m := sessionsTextPattern.FindStringSubmatch(t)
		if len(m) >= 2 {
			if n, err := strconv.Atoi(m[1]); err == nil && entities.IsValidSessionTier(n) {
				return n, true
			}
		}
		return 0, false
	}
	if strings.Contains(t, "individual") {
		return 2, true
	}
	return 0, false
}

// resolveLogin recovers the payer's login from the resource. The payer
// email reported by the provider wins; older checkout paths lead the
// external_reference with the email ("x@y.com|plan=...|sessions=N").
func resolveLogin(payerEmail, externalReference string) string {
	if e := strings.TrimSpace(payerEmail); e != "" {
		return e
	}
	head, _, _ := strings.Cut(externalReference, "|")
	head = strings.TrimSpace(head)
	if strings.Contains(head, "@") {
		return head
	}
	return ""
}
