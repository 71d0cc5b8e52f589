package sitter

// Rule type tags, fixed by the document format the downstream parser
// generator consumes.
const (
	PatternType = "PATTERN"
	SeqType     = "SEQ"
	ChoiceType  = "CHOICE"
	AliasType   = "ALIAS"
	SymbolType  = "SYMBOL"
)

// SourceFileRule is the identifier of the alias rule binding the external
// entry symbol to the grammar's root nonterminal.
const SourceFileRule = "source_file"

// Rule is one compiled grammar rule. The concrete types marshal directly to
// the document shapes the downstream parser generator expects.
type Rule interface {
	RuleType() string
}

// SymbolRef is a by-name reference from one rule to another rule in the same
// grammar. Resolution is the parser generator's job, not the compiler's; the
// compiler only guarantees the name it emits is also a rule it emits.
type SymbolRef struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// PatternRule matches a leaf token against a regular expression.
type PatternRule struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// SeqRule matches every member, in order.
type SeqRule struct {
	Type    string       `json:"type"`
	Members []*SymbolRef `json:"members"`
}

// ChoiceRule matches any one member.
type ChoiceRule struct {
	Type    string       `json:"type"`
	Members []*SymbolRef `json:"members"`
}

// AliasRule presents the rule it wraps under another name. Named=false hides
// the alias from the node names of the produced syntax tree.
type AliasRule struct {
	Type    string     `json:"type"`
	Named   bool       `json:"named"`
	Value   string     `json:"value"`
	Content *SymbolRef `json:"content"`
}

func (r *PatternRule) RuleType() string { return r.Type }
func (r *SeqRule) RuleType() string     { return r.Type }
func (r *ChoiceRule) RuleType() string  { return r.Type }
func (r *AliasRule) RuleType() string   { return r.Type }

func NewSymbol(name string) *SymbolRef {
	return &SymbolRef{Type: SymbolType, Name: name}
}

func NewPattern(value string) *PatternRule {
	return &PatternRule{Type: PatternType, Value: value}
}

// NewSeq builds a sequence rule. A nil member list becomes an empty one, so a
// production with no fields still serializes with "members": [].
func NewSeq(members []*SymbolRef) *SeqRule {
	if members == nil {
		members = []*SymbolRef{}
	}
	return &SeqRule{Type: SeqType, Members: members}
}

func NewChoice(members []*SymbolRef) *ChoiceRule {
	if members == nil {
		members = []*SymbolRef{}
	}
	return &ChoiceRule{Type: ChoiceType, Members: members}
}

// NewAlias builds the unnamed alias rule binding the entry symbol to the root
// nonterminal: its display value and its content symbol are both the root's
// name.
func NewAlias(root string) *AliasRule {
	return &AliasRule{Type: AliasType, Named: false, Value: root, Content: NewSymbol(root)}
}

// Grammar is the compiled output for one grammar group: the complete named
// collection of rules. Rule identifiers are unique within the map by
// construction, and every SymbolRef inside a rule resolves to a key of the
// same map.
type Grammar struct {
	Name  string          `json:"name"`
	Rules map[string]Rule `json:"rules"`
}
