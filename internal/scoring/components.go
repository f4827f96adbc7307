package scoring

const (
	SkillsComponent    = "skills"
	KeywordsComponent  = "keywords"
	StructureComponent = "structure"
	LengthComponent    = "length"
)

// toggle carries the enabled state shared by every component.
type toggle struct {
	disabled bool
	reason   string
}

func (t *toggle) Disable(reason string) {
	t.disabled = true
	t.reason = reason
}

func (t *toggle) IsEnabled() bool { return !t.disabled }

func (t *toggle) Reason() string { return t.reason }

// Default returns the Skills, Keywords, Structure and Length components.
func Default() []Component {
	return []Component{NewSkills(), NewKeywords(), NewStructure(), NewLength()}
}

type skillsComponent struct{ toggle }

// NewSkills awards 5 points per detected skill, up to 40.
func NewSkills() Component { return &skillsComponent{} }

func (c *skillsComponent) Name() string { return SkillsComponent }

func (c *skillsComponent) Max() int { return 40 }

func (c *skillsComponent) Score(in Input) int {
	return min(in.Analysis.NumSkills()*5, c.Max())
}

type keywordsComponent struct{ toggle }

// NewKeywords takes the job match score, up to 30.
func NewKeywords() Component { return &keywordsComponent{} }

func (c *keywordsComponent) Name() string { return KeywordsComponent }

func (c *keywordsComponent) Max() int { return 30 }

func (c *keywordsComponent) Score(in Input) int {
	return min(in.Analysis.JDMatchScore, c.Max())
}

type structureComponent struct{ toggle }

// NewStructure awards 4 points per non-empty section, up to 20.
func NewStructure() Component { return &structureComponent{} }

func (c *structureComponent) Name() string { return StructureComponent }

func (c *structureComponent) Max() int { return 20 }

func (c *structureComponent) Score(in Input) int {
	return min(in.Sections.NonEmpty()*4, c.Max())
}

type lengthComponent struct{ toggle }

// NewLength rewards resumes between 120 and 450 words.
func NewLength() Component { return &lengthComponent{} }

func (c *lengthComponent) Name() string { return LengthComponent }

func (c *lengthComponent) Max() int { return 10 }

func (c *lengthComponent) Score(in Input) int {
	words := in.Analysis.WordCount
	switch {
	case words >= 120 && words <= 450:
		return 10
	case words >= 80 && words < 120, words > 450 && words <= 600:
		return 6
	default:
		return 2
	}
}
