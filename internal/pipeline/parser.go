package pipeline

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/payment-instruction-processor/internal/domain"
)

// grammar describes one instruction form. The two recognized forms share the
// same token layout and differ only in keywords and which account side is
// named first.
type grammar struct {
	instructionType domain.InstructionType
	roleKeyword     string
	continuation    [3]string
	firstIsDebit    bool
}

var grammars = map[string]grammar{
	"DEBIT": {
		instructionType: domain.InstructionTypeDebit,
		roleKeyword:     "FROM",
		continuation:    [3]string{"CREDIT", "TO", "ACCOUNT"},
		firstIsDebit:    true,
	},
	"CREDIT": {
		instructionType: domain.InstructionTypeCredit,
		roleKeyword:     "TO",
		continuation:    [3]string{"DEBIT", "FROM", "ACCOUNT"},
		firstIsDebit:    false,
	},
}

// The shortest well-formed instruction has eleven tokens:
// keyword, amount, currency, two role keywords, one-token account id,
// FOR, three continuation keywords, one-token account id.
const minInstructionTokens = 11

// Parse turns one raw instruction line into a record. It never returns an
// error: anything unparseable comes back as a terminal failed record whose
// status code says how far parsing got. Keyword matching is case-insensitive;
// account identifiers and the date clause are captured verbatim.
func Parse(raw string) (rec domain.Instruction) {
	defer func() {
		if r := recover(); r != nil {
			rec = rec.Fail(domain.StatusCodeMalformed, "instruction could not be parsed")
		}
	}()

	tokens := strings.Fields(raw)
	if len(tokens) == 0 {
		return rec.Fail(domain.StatusCodeMalformed, "instruction is empty")
	}

	g, ok := grammars[strings.ToUpper(tokens[0])]
	if !ok {
		return rec.Fail(domain.StatusCodeMissingKeyword,
			fmt.Sprintf("unrecognized instruction keyword %q", tokens[0]))
	}
	rec.Type = g.instructionType

	if len(tokens) < minInstructionTokens {
		return rec.Fail(domain.StatusCodeMalformed, "instruction is incomplete")
	}

	amount, err := decimal.NewFromString(tokens[1])
	if err != nil {
		return rec.Fail(domain.StatusCodeMalformed,
			fmt.Sprintf("amount %q is not numeric", tokens[1]))
	}
	rec.Amount = &amount
	rec.Currency = strings.ToUpper(tokens[2])

	if !strings.EqualFold(tokens[3], g.roleKeyword) {
		return rec.Fail(domain.StatusCodeKeywordOrder,
			fmt.Sprintf("expected keyword %s after currency, got %q", g.roleKeyword, tokens[3]))
	}
	if !strings.EqualFold(tokens[4], "ACCOUNT") {
		return rec.Fail(domain.StatusCodeKeywordOrder,
			fmt.Sprintf("expected keyword ACCOUNT after %s, got %q", g.roleKeyword, tokens[4]))
	}

	forIdx := indexOfKeyword(tokens, 5, "FOR")
	if forIdx < 0 {
		return rec.Fail(domain.StatusCodeMissingKeyword, "missing FOR keyword")
	}
	first := strings.Join(tokens[5:forIdx], " ")
	if first == "" {
		return rec.Fail(domain.StatusCodeMalformed, "missing first account identifier")
	}
	if g.firstIsDebit {
		rec.DebitAccount = first
	} else {
		rec.CreditAccount = first
	}

	for i, keyword := range g.continuation {
		pos := forIdx + 1 + i
		if pos >= len(tokens) || !strings.EqualFold(tokens[pos], keyword) {
			return rec.Fail(domain.StatusCodeKeywordOrder,
				fmt.Sprintf("expected keyword %s after FOR clause", keyword))
		}
	}

	rest := forIdx + 1 + len(g.continuation)
	onIdx := indexOfKeyword(tokens, rest, "ON")
	secondEnd := len(tokens)
	if onIdx >= 0 {
		secondEnd = onIdx
	}
	second := strings.Join(tokens[rest:secondEnd], " ")
	if second == "" {
		return rec.Fail(domain.StatusCodeMalformed, "missing second account identifier")
	}
	if g.firstIsDebit {
		rec.CreditAccount = second
	} else {
		rec.DebitAccount = second
	}

	if onIdx >= 0 {
		if onIdx+1 >= len(tokens) {
			return rec.Fail(domain.StatusCodeMalformed, "missing execution date after ON")
		}
		executeBy := strings.Join(tokens[onIdx+1:], " ")
		rec.ExecuteBy = &executeBy
	}

	return rec
}

func indexOfKeyword(tokens []string, from int, keyword string) int {
	for i := from; i < len(tokens); i++ {
		if strings.EqualFold(tokens[i], keyword) {
			return i
		}
	}
	return -1
}
