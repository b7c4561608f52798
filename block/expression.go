/*
 * vhdlblock
 *
 * Copyright 2024 vhdlblock authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package block

import (
	"fmt"
	"strings"

	"github.com/krotik/vhdlblock/token"
)

/*
characterTranslation maps a single-character punctuation value to the
operator/delimiter token kind it rewrites to inside an expression.
*/
var characterTranslation = map[string]token.Kind{
	"+": token.KindOperatorPlus,
	"-": token.KindOperatorMinus,
	"*": token.KindOperatorTimes,
	"/": token.KindOperatorDivide,
	"&": token.KindOperatorConcat,
	"<": token.KindOperatorLT,
	">": token.KindOperatorGT,
	",": token.KindOperatorComma,
}

/*
fusedCharacterTranslation maps a fused punctuation lexeme to its operator
token kind.
*/
var fusedCharacterTranslation = map[string]token.Kind{
	"**":  token.KindOperatorExponent,
	"/=":  token.KindOperatorNEQ,
	"<=":  token.KindOperatorLEQ,
	">=":  token.KindOperatorGEQ,
	"?=":  token.KindOperatorMatchEQ,
	"?/=": token.KindOperatorMatchNEQ,
	"?<":  token.KindOperatorMatchLT,
	"?<=": token.KindOperatorMatchLEQ,
	"?>":  token.KindOperatorMatchGT,
	"?>=": token.KindOperatorMatchGEQ,
}

/*
operatorTranslations maps a lowercased word to the keyword-operator token
kind it rewrites to inside an expression.
*/
var operatorTranslations = map[string]token.Kind{
	"or":   token.KindOperatorOr,
	"nor":  token.KindOperatorNor,
	"and":  token.KindOperatorAnd,
	"nand": token.KindOperatorNand,
	"xor":  token.KindOperatorXor,
	"xnor": token.KindOperatorXnor,
	"sla":  token.KindOperatorSLA,
	"sll":  token.KindOperatorSLL,
	"sra":  token.KindOperatorSRA,
	"srl":  token.KindOperatorSRL,
	"not":  token.KindOperatorNot,
	"abs":  token.KindOperatorAbs,
}

/*
exprVariant names one of the four expression termination rules (spec.md
§4.4).
*/
type exprVariant int

const (
	exprEndedBySemicolon exprVariant = iota
	exprEndedByCharOrCloseParen
	exprEndedByKeywordOrCloseParen
	exprEndedByKeywordOrToOrDownto
)

/*
exprConfig parameterizes the shared expression state machine for one of the
four variants. A single exprConfig value's method values (stateExpression,
stateWhitespace1) satisfy stateFunc and can be pushed directly - there is no
per-call allocation the way the teacher's astNodeMap entries are pre-built
once at init() time.
*/
type exprConfig struct {
	variant exprVariant

	// variant 2: the non-paren exit character, e.g. ":".
	exitChar string

	// variant 3/4: the terminating keyword, e.g. "loop".
	exitKeyword     string
	exitKeywordKind token.Kind

	// variant 4: the range direction keywords.
	rangeKeywords map[string]token.Kind

	// popOnTerminate is how many frames Pop on normal/keyword/semicolon
	// termination. popOnSoftExit is how many frames variant 2's bare ")"
	// soft exit pops.
	popOnTerminate int
	popOnSoftExit  int

	// blockKind is the Kind of the owning block emitted on termination;
	// endKind is the Kind of the small terminator block emitted alongside
	// it. Both default to the plain expression kinds when zero-valued by
	// exprConfigDefaults.
	blockKind Kind
	endKind   Kind
}

/*
exprConfigDefaults fills blockKind/endKind with the plain expression kinds
when the caller did not set them, so a literal exprConfig{...} used for a
bare expression (return statement, loop range) does not need to repeat
KindExpression/KindEndOfExpression explicitly.
*/
func exprConfigDefaults(cfg exprConfig) *exprConfig {
	if cfg.blockKind == 0 {
		cfg.blockKind = KindExpression
	}
	if cfg.endKind == 0 {
		cfg.endKind = KindEndOfExpression
	}
	return &cfg
}

/*
stateExpression is the post-significant-token auxiliary state shared by all
four expression variants (spec.md §4.4 "stateExpression").
*/
func (cfg *exprConfig) stateExpression(s *State) error {
	if done, err := cfg.checkTerminator(s); done || err != nil {
		return err
	}
	return cfg.dispatch(s)
}

/*
stateWhitespace1 is the after-whitespace auxiliary state shared by all four
expression variants (spec.md §4.4 "stateWhitespace1"): trivia between
significant tokens is folded into multi-part continuations of the owning
expression block, with the two multi-line-comment special cases.
*/
func (cfg *exprConfig) stateWhitespace1(s *State) error {
	if handleOwnedTrivia(s, cfg.blockKind, true) {
		s.Goto(cfg.stateWhitespace1Func())
		return nil
	}
	if done, err := cfg.checkTerminator(s); done || err != nil {
		return err
	}
	return cfg.dispatch(s)
}

func (cfg *exprConfig) stateExpressionFunc() stateFunc  { return cfg.stateExpression }
func (cfg *exprConfig) stateWhitespace1Func() stateFunc { return cfg.stateWhitespace1 }

/*
checkTerminator applies the variant-specific termination rule. Returns
done=true if the token was consumed as (or as part of) termination, whether
or not it also produced an error.
*/
func (cfg *exprConfig) checkTerminator(s *State) (bool, error) {
	tok := s.Token()

	isChar := func(v string) bool {
		return tok.Kind == token.KindCharacter && tok.Value == v
	}
	isWord := func(v string) bool {
		return tok.Kind == token.KindWord && strings.ToLower(tok.Value) == v
	}

	switch cfg.variant {
	case exprEndedBySemicolon:
		if isChar(";") {
			return true, cfg.terminateAtDepthZero(s, token.KindBoundary, cfg.popOnTerminate)
		}

	case exprEndedByCharOrCloseParen:
		if isChar(cfg.exitChar) {
			return true, cfg.terminateAtDepthZero(s, token.KindBoundary, cfg.popOnTerminate)
		}
		if isChar(")") && s.Counter() == 0 {
			return true, cfg.softExit(s)
		}

	case exprEndedByKeywordOrCloseParen:
		if isWord(cfg.exitKeyword) && s.Counter() == 0 {
			return true, cfg.terminateAtDepthZero(s, cfg.exitKeywordKind, cfg.popOnTerminate)
		}
		if isChar(")") && s.Counter() == 0 {
			return true, cfg.softExit(s)
		}

	case exprEndedByKeywordOrToOrDownto:
		if isWord(cfg.exitKeyword) && s.Counter() == 0 {
			return true, cfg.terminateAtDepthZero(s, cfg.exitKeywordKind, cfg.popOnTerminate)
		}
		for word, kind := range cfg.rangeKeywords {
			if isWord(word) && s.Counter() == 0 {
				return true, cfg.terminateWithDirection(s, kind)
			}
		}
	}

	return false, nil
}

/*
terminateAtDepthZero handles ";", a bare terminating keyword, or the
configurable exit character: rewrite the terminator, emit the owning
expression block plus the terminating end-of-expression block, then pop.
*/
func (cfg *exprConfig) terminateAtDepthZero(s *State, rewriteKind token.Kind, popCount int) error {
	if s.Counter() != 0 {
		return s.Fail(ErrBracketMismatch, "expression closed with unbalanced parentheses")
	}

	end := s.Rewrite(rewriteKind, s.Token().Value)
	s.EmitTerminated(cfg.blockKind, cfg.endKind, end)

	return s.Pop(popCount, nil)
}

/*
terminateWithDirection handles variant 4's "to"/"downto": rewrite the
direction keyword, emit the expression block followed by a loop-direction
block, then pop once.
*/
func (cfg *exprConfig) terminateWithDirection(s *State, kind token.Kind) error {
	if s.Counter() != 0 {
		return s.Fail(ErrBracketMismatch, "range expression closed with unbalanced parentheses")
	}

	dir := s.Rewrite(kind, strings.ToLower(s.Token().Value))
	s.EmitTerminated(cfg.blockKind, KindLoopDirection, dir)

	return s.Pop(1, nil)
}

/*
softExit handles variant 2's bare ")" at depth 0: the expression ends
without consuming the bracket, control returns to the enclosing list with
the closing bracket carried forward as the new marker.
*/
func (cfg *exprConfig) softExit(s *State) error {
	tok := s.Token()
	if m := s.Marker(); m != nil && m != tok {
		s.Emit(cfg.blockKind, m, tok.Previous(), false)
	}
	return s.Pop(cfg.popOnSoftExit, tok)
}

/*
dispatch implements the generic per-token handling shared by stateExpression
and stateWhitespace1 once termination has been ruled out: fused/character
operators, parenthesis counter maintenance, word-to-operator-or-identifier
lookup, literal passthrough, and the transition into whitespace handling.
*/
func (cfg *exprConfig) dispatch(s *State) error {
	tok := s.Token()

	switch tok.Kind {
	case token.KindFusedCharacter:
		if kind, ok := fusedCharacterTranslation[tok.Value]; ok {
			s.Rewrite(kind, tok.Value)
		}
		s.Goto(cfg.stateExpressionFunc())
		return nil

	case token.KindCharacter:
		switch tok.Value {
		case "(":
			s.Rewrite(token.KindBoundary, tok.Value)
			if err := s.AdjustCounter(1, false); err != nil {
				return err
			}
		case ")":
			s.Rewrite(token.KindBoundary, tok.Value)
			if err := s.AdjustCounter(-1, cfg.variant == exprEndedByCharOrCloseParen); err != nil {
				return err
			}
		default:
			if kind, ok := characterTranslation[tok.Value]; ok {
				s.Rewrite(kind, tok.Value)
			}
		}
		s.Goto(cfg.stateExpressionFunc())
		return nil

	case token.KindWord:
		word := strings.ToLower(tok.Value)
		if kind, ok := operatorTranslations[word]; ok {
			s.Rewrite(kind, word)
		} else {
			s.Rewrite(token.KindIdentifier, tok.Value)
		}
		s.Goto(cfg.stateExpressionFunc())
		return nil

	case token.KindLiteral:
		s.Goto(cfg.stateExpressionFunc())
		return nil

	case token.KindSpace, token.KindIndentation, token.KindLinebreak,
		token.KindSingleLineComment, token.KindMultiLineComment:
		handleOwnedTrivia(s, cfg.blockKind, true)
		s.Goto(cfg.stateWhitespace1Func())
		return nil
	}

	return s.Fail(ErrUnreachableState, fmt.Sprintf("unexpected token %s inside expression", tok.Kind))
}
