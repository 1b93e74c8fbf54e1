package grammar

import (
	"github.com/npillmayer/lablang"
)

// EntryLabel is the name of the label where execution starts.
const EntryLabel = ".ENTRY"

// Instruction is a line of tokens together with its position in the source.
type Instruction struct {
	LineNo int  // 1-based line number in the source text
	Tokens Line // command and arguments
}

// Label is a named block of instructions. Labels are the targets of jumps.
type Label struct {
	Name string
	Body []Instruction
}

// Program is a set of labels with unique names. A program is immutable
// after loading.
type Program struct {
	labels []*Label
	index  map[string]*Label
}

// NewProgram creates an empty program without any labels.
func NewProgram() *Program {
	return &Program{index: make(map[string]*Label)}
}

// Label returns the label with a given name, or nil.
func (p *Program) Label(name string) *Label {
	return p.index[name]
}

// HasLabel is a predicate: does the program contain a label with a given name?
func (p *Program) HasLabel(name string) bool {
	_, ok := p.index[name]
	return ok
}

// Labels returns all labels in order of declaration. The result includes the
// unnamed prelude which collects the instructions in front of the first
// label directive.
func (p *Program) Labels() []*Label {
	return p.labels
}

func (p *Program) seal(name string, body []Instruction) {
	l := &Label{Name: name, Body: body}
	p.labels = append(p.labels, l)
	if _, exists := p.index[name]; !exists {
		p.index[name] = l
	}
}

// LoadSource tokenizes source text and loads it as a program.
func LoadSource(source string) (*Program, error) {
	lines, err := Tokenize(source)
	if err != nil {
		return nil, err
	}
	return Load(lines)
}

// Load groups tokenized lines into labels.
//
// Instructions in front of the first `label` directive form a label with an
// empty name, which cannot be jumped to. Label names have to be unique and a
// label named `.ENTRY` has to be present.
func Load(lines []Line) (*Program, error) {
	prog := NewProgram()
	current := ""
	var body []Instruction
	for i, line := range lines {
		lineno := i + 1
		if len(line) == 0 {
			continue
		}
		if line.Command() != "label" {
			body = append(body, Instruction{LineNo: lineno, Tokens: line})
			continue
		}
		if args := line.Args(); len(args) != 1 {
			return nil, lablang.NewError(lablang.LabelUsage,
				"Expected 1 argument, but got %d", len(args)).
				At(lineno, line.String()).
				WithUsage("label <label_name>")
		}
		prog.seal(current, body)
		body = nil
		current = line.Args()[0]
		if prog.HasLabel(current) {
			tracer().P("label", current).Errorf("duplicate label")
			return nil, lablang.NewError(lablang.DuplicateLabel,
				"Label `%s` already exists.", current).
				At(lineno, line.String()).
				WithHelp("Do not use an existing label name.")
		}
		tracer().P("label", current).Debugf("label opened in line %d", lineno)
	}
	prog.seal(current, body)
	if !prog.HasLabel(EntryLabel) {
		return nil, lablang.NewError(lablang.MissingEntry,
			"Label `.ENTRY` does not exist. (.ENTRY is the main entry point of the script.)").
			WithHelp("Add a label named `.ENTRY` using `label .ENTRY`")
	}
	tracer().Infof("loaded program with %d labels", len(prog.labels))
	return prog, nil
}
