package chat

import "strings"

// Metadata holds the @-header fields of a session.
type Metadata struct {
	Date         string
	Media        string
	Participants []Participant
}

// Participant is one declared session participant, merged from the
// @Participants roster and the per-speaker @ID line.
type Participant struct {
	Label    string
	Name     string
	Role     string
	Age      string
	Gender   string
	Language string
}

// parseMetadata extracts the fields the pipeline persists. Unknown
// @-lines are ignored.
func parseMetadata(header []string) Metadata {
	var md Metadata
	byLabel := make(map[string]int)

	for _, line := range header {
		name, value, ok := strings.Cut(line, ":\t")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)

		switch name {
		case "@Date":
			md.Date = value
		case "@Media":
			md.Media = value
		case "@Participants":
			for _, entry := range strings.Split(value, ",") {
				p := parseParticipant(strings.TrimSpace(entry))
				if p.Label == "" {
					continue
				}
				byLabel[p.Label] = len(md.Participants)
				md.Participants = append(md.Participants, p)
			}
		case "@ID":
			// language|corpus|code|age|sex|group|SES|role|education|custom
			fields := strings.Split(value, "|")
			if len(fields) < 8 {
				continue
			}
			i, ok := byLabel[fields[2]]
			if !ok {
				continue
			}
			md.Participants[i].Language = fields[0]
			md.Participants[i].Age = fields[3]
			md.Participants[i].Gender = fields[4]
			if md.Participants[i].Role == "" {
				md.Participants[i].Role = fields[7]
			}
		}
	}
	return md
}

// parseParticipant splits one roster entry: "CHI Sani Target_Child".
// The middle name field is optional.
func parseParticipant(entry string) Participant {
	fields := strings.Fields(entry)
	switch len(fields) {
	case 2:
		return Participant{Label: fields[0], Role: fields[1]}
	case 3:
		return Participant{Label: fields[0], Name: fields[1], Role: fields[2]}
	default:
		return Participant{}
	}
}
