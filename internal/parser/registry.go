package parser

import (
	"fmt"
	"strings"
	"sync"
)

// Registry owns every bank parser and indexes them by name, app package and
// SMS sender code. It is immutable once built and safe for concurrent use.
type Registry struct {
	banks     []*Bank
	byName    map[string]*Bank
	byPackage map[string]*Bank
	bySender  map[string]*Bank
	byAlias   map[string]*Bank
}

// New compiles defs in order. Two banks claiming the same name, package or
// sender code is an error, as is any pattern that does not compile.
func New(defs ...BankDef) (*Registry, error) {
	r := &Registry{
		byName:    make(map[string]*Bank, len(defs)),
		byPackage: make(map[string]*Bank),
		bySender:  make(map[string]*Bank),
		byAlias:   make(map[string]*Bank),
	}

	for _, def := range defs {
		b, err := NewBank(def)
		if err != nil {
			return nil, err
		}
		if prev, ok := r.byName[b.name]; ok {
			return nil, fmt.Errorf("bank %q registered twice", prev.name)
		}
		r.byName[b.name] = b

		for _, pkg := range b.packages {
			if err := claim(r.byPackage, pkg, b, "package"); err != nil {
				return nil, err
			}
		}
		for _, code := range b.senders {
			if err := claim(r.bySender, code, b, "sender code"); err != nil {
				return nil, err
			}
		}

		// Aliases only resolve Lookup; the first bank to claim one keeps it.
		for _, alias := range append([]string{b.name, string(b.bankType)}, b.aliases...) {
			if key := lookupKey(alias); key != "" {
				if _, taken := r.byAlias[key]; !taken {
					r.byAlias[key] = b
				}
			}
		}

		r.banks = append(r.banks, b)
	}

	return r, nil
}

func claim(index map[string]*Bank, key string, b *Bank, kind string) error {
	k := lookupKey(key)
	if k == "" {
		return fmt.Errorf("bank %q: empty %s", b.name, kind)
	}
	if owner, ok := index[k]; ok {
		return fmt.Errorf("%s %q claimed by both %q and %q", kind, key, owner.name, b.name)
	}
	index[k] = b
	return nil
}

func lookupKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of all built-in banks. A broken built-in table
// is a programming error and panics on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(Banks()...)
		if err != nil {
			panic(fmt.Sprintf("parser: built-in bank table: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Parser returns the parser registered under the exact bank name.
func (r *Registry) Parser(bankName string) (Parser, bool) {
	b, ok := r.byName[bankName]
	if !ok {
		return nil, false
	}
	return b, true
}

// ParserByPackage returns the parser owning an app package name.
func (r *Registry) ParserByPackage(packageName string) (Parser, bool) {
	b, ok := r.byPackage[lookupKey(packageName)]
	if !ok {
		return nil, false
	}
	return b, true
}

// ParserBySender returns the parser owning an SMS sender code.
func (r *Registry) ParserBySender(senderCode string) (Parser, bool) {
	b, ok := r.bySender[lookupKey(senderCode)]
	if !ok {
		return nil, false
	}
	return b, true
}

// Lookup resolves a bank by display name, alias or bank type, ignoring case.
func (r *Registry) Lookup(name string) (Parser, bool) {
	b, ok := r.byAlias[lookupKey(name)]
	if !ok {
		return nil, false
	}
	return b, true
}

// ParseMessage finds the bank that sent message and extracts the transaction.
//
// The parser owning senderCode is tried first, then the one owning
// packageName; empty hints are skipped. A hinted parser is only used when its
// Detect accepts the message. If neither hint yields a transaction the
// message is searched blind in two passes: first every bank's own formats in
// registration order, then every bank's fallbacks in the same order. A
// generic fallback of an early bank therefore never claims a message that a
// later bank recognises precisely. The bool is false when nothing matched.
func (r *Registry) ParseMessage(message, packageName, senderCode string) (Result, bool) {
	if senderCode != "" {
		if b, ok := r.bySender[lookupKey(senderCode)]; ok {
			if res, ok := try(b, message); ok {
				return res, true
			}
		}
	}

	if packageName != "" {
		if b, ok := r.byPackage[lookupKey(packageName)]; ok {
			if res, ok := try(b, message); ok {
				return res, true
			}
		}
	}

	for _, b := range r.banks {
		if tx, ok := b.parseSpecific(message); ok {
			return Result{Parser: b, Transaction: tx}, true
		}
	}
	for _, b := range r.banks {
		if tx, ok := b.parseFallback(message); ok {
			return Result{Parser: b, Transaction: tx}, true
		}
	}
	return Result{}, false
}

func try(b *Bank, message string) (Result, bool) {
	if !b.Detect(message) {
		return Result{}, false
	}
	tx, ok := b.Parse(message)
	if !ok {
		return Result{}, false
	}
	return Result{Parser: b, Transaction: tx}, true
}

// IsBankMessage is a cheap pre-filter: does any parser recognise the message.
// The parser owning packageName is asked first.
func (r *Registry) IsBankMessage(message, packageName string) bool {
	if packageName != "" {
		if b, ok := r.byPackage[lookupKey(packageName)]; ok && b.Detect(message) {
			return true
		}
	}
	for _, b := range r.banks {
		if b.Detect(message) {
			return true
		}
	}
	return false
}

// BankNames lists the registered banks in registration order.
func (r *Registry) BankNames() []string {
	names := make([]string, len(r.banks))
	for i, b := range r.banks {
		names[i] = b.name
	}
	return names
}

// Parsers lists the registered parsers in registration order.
func (r *Registry) Parsers() []Parser {
	out := make([]Parser, len(r.banks))
	for i, b := range r.banks {
		out[i] = b
	}
	return out
}
