package resume

// Score rates how complete a parsed resume is: contact info (30), skills
// (up to 25, tiered), stated experience (25) and education (20), capped at
// 100.
func Score(p Parsed) int {
	score := 0

	if p.Email != "" {
		score += 10
	}
	if p.Phone != "" {
		score += 10
	}
	if p.Name != "" {
		score += 10
	}

	switch {
	case len(p.Skills) >= 5:
		score += 25
	case len(p.Skills) >= 3:
		score += 15
	case len(p.Skills) >= 1:
		score += 10
	}

	if p.Experience != "" && p.Experience != NotSpecified {
		score += 25
	}

	if p.Education != "" && p.Education != NotSpecified {
		score += 20
	}

	if score > 100 {
		score = 100
	}
	return score
}
