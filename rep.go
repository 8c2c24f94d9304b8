package mal

// Rep reads one form from line, evaluates it in env and prints the result.
// A failure leaves every binding made before it in place.
func Rep(env *Env, line string) (string, error) {
	node, err := Read(line)
	if err != nil {
		return "", err
	}
	ret, err := env.Eval(node)
	if err != nil {
		return "", err
	}
	return Print(ret), nil
}

// EvalString evaluates every form in text in order and returns the value of
// the last one, or nil when text holds no forms.
func EvalString(env *Env, text string) (*Node, error) {
	r := NewReader(text)
	ret := Nil
	for r.More() {
		node, err := r.Next()
		if err != nil {
			return nil, err
		}
		ret, err = env.Eval(node)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}
