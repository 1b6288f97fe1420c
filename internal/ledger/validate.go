package ledger

// Validate enforces the two cross-record invariants over the full,
// unfiltered transaction set:
//
//  1. Every transaction's primary account must be declared.
//  2. amount + offset_amount must be zero whenever both legs' accounts are
//     declared and share a currency. Cross-currency pairs and legs naming
//     undeclared offset accounts are exempt, not failures.
//
// Violations are collected rather than fail-fast; callers treat a
// non-empty result as fatal before producing any report output.
func (l *Ledger) Validate() []error {
	var errs []error
	for _, t := range l.transactions {
		if _, ok := l.byName[t.Account]; !ok {
			errs = append(errs, &UnknownAccountError{Name: t.Account})
		}

		if t.Amount.Add(t.OffsetAmount).IsZero() {
			continue
		}
		account, ok := l.byName[t.Account]
		if !ok {
			continue
		}
		offset, ok := l.byName[t.OffsetAccount]
		if !ok {
			continue
		}
		if account.Currency == offset.Currency {
			errs = append(errs, &UnbalancedTransactionError{Transaction: t})
		}
	}
	return errs
}
