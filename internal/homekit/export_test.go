package homekit

func (b *Bridge) ChangePending() bool {
	return len(b.changed) > 0
}

func (b *Bridge) BuildServer() error {
	_, err := b.newServer()
	return err
}
