package parser

// Label is a source line binding a name to an absolute address.
type Label struct {
	Address uint16
	Name    string
}

// label parses '(0xADDR)Name', with optional blanks before the name.
func label(input string) (rest string, lbl Label, err error) {
	defer wrap("label", input, &rest, &err)

	rest, err = tag(space0(input), "(")
	if err != nil {
		return
	}
	rest, lbl.Address, err = prefixedHex16(rest)
	if err != nil {
		return
	}
	rest, err = tag(rest, ")")
	if err != nil {
		return
	}
	rest, lbl.Name, err = letters(space0(rest), "label name")
	return
}
