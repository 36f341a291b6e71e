package model

// RequireNonNull fails with ErrMissingRequiredField when n is nil.
func RequireNonNull(typeName, field string, n *Node) (*Node, error) {
	if n == nil {
		return nil, &ValidationError{Err: ErrMissingRequiredField, Type: typeName, Field: field}
	}
	return n, nil
}

// RequireNonEmpty fails with ErrMissingRequiredCollection when list has no entries.
// The list is returned as is, not copied.
func RequireNonEmpty(typeName, field string, list []*Node) ([]*Node, error) {
	if len(list) == 0 {
		return nil, &ValidationError{Err: ErrMissingRequiredCollection, Type: typeName, Field: field}
	}
	return list, nil
}

// ChoiceElement checks that n, if present, is of one of the allowed types or a type derived from one.
// A nil n is accepted; use RequireChoiceElement for required choice fields.
func ChoiceElement(typeName, field string, n *Node, allowed ...string) (*Node, error) {
	if n == nil {
		return nil, nil
	}
	if !n.def.assignable(allowed) {
		return nil, &ValidationError{
			Err:     ErrInvalidChoiceType,
			Type:    typeName,
			Field:   field,
			Actual:  n.def.Name,
			Allowed: allowed,
		}
	}
	return n, nil
}

// RequireChoiceElement is ChoiceElement for a required field.
func RequireChoiceElement(typeName, field string, n *Node, allowed ...string) (*Node, error) {
	if _, err := RequireNonNull(typeName, field, n); err != nil {
		return nil, err
	}
	return ChoiceElement(typeName, field, n, allowed...)
}

// RequireValueOrChildren fails with ErrEmptyElement when n has neither a value nor children.
func RequireValueOrChildren(n *Node) error {
	if !n.HasValue() && !n.HasChildren() {
		return &ValidationError{Err: ErrEmptyElement, Type: n.TypeName()}
	}
	return nil
}
