// Package vocab provides a word-level vocabulary mapping whitespace
// separated tokens to int32 ids. Unknown words map to the reserved
// <UNK> token rather than failing, so encoding never returns an error.
package vocab

import "strings"

// UnknownToken is the reserved fallback for out-of-vocabulary words.
const UnknownToken = "<UNK>"

// Vocabulary is an immutable token/id mapping.
type Vocabulary struct {
	tokenToID map[string]int32
	idToToken []string
	unkID     int32
}

// New builds a vocabulary assigning ids in token order. The unknown
// token is appended automatically when absent.
func New(tokens []string) *Vocabulary {
	v := &Vocabulary{
		tokenToID: make(map[string]int32, len(tokens)+1),
		idToToken: make([]string, 0, len(tokens)+1),
	}
	for _, tok := range tokens {
		if _, ok := v.tokenToID[tok]; ok {
			continue
		}
		v.tokenToID[tok] = int32(len(v.idToToken))
		v.idToToken = append(v.idToToken, tok)
	}
	unk, ok := v.tokenToID[UnknownToken]
	if !ok {
		unk = int32(len(v.idToToken))
		v.tokenToID[UnknownToken] = unk
		v.idToToken = append(v.idToToken, UnknownToken)
	}
	v.unkID = unk
	return v
}

// Size returns the number of tokens including <UNK>.
func (v *Vocabulary) Size() int { return len(v.idToToken) }

// UnknownID returns the id of the <UNK> token.
func (v *Vocabulary) UnknownID() int32 { return v.unkID }

// ID returns the token's id, or the <UNK> id for unknown tokens.
func (v *Vocabulary) ID(token string) int32 {
	if id, ok := v.tokenToID[token]; ok {
		return id
	}
	return v.unkID
}

// Token returns the token for an id; ok is false when out of range.
func (v *Vocabulary) Token(id int32) (string, bool) {
	if id < 0 || int(id) >= len(v.idToToken) {
		return "", false
	}
	return v.idToToken[id], true
}

// Encode splits text on whitespace and maps each word to its id.
func (v *Vocabulary) Encode(text string) []int32 {
	words := strings.Fields(text)
	ids := make([]int32, len(words))
	for i, w := range words {
		ids[i] = v.ID(w)
	}
	return ids
}

// Decode joins the tokens for ids with spaces. Out-of-range ids render
// as <UNK>.
func (v *Vocabulary) Decode(ids []int32) string {
	words := make([]string, len(ids))
	for i, id := range ids {
		tok, ok := v.Token(id)
		if !ok {
			tok = UnknownToken
		}
		words[i] = tok
	}
	return strings.Join(words, " ")
}
