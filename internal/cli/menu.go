package cli

// Menu implements MenuInterface for handling the main application flow
type Menu struct {
	display DisplayHandler
	input   UserInputHandler
	factory ProcessorFactory
}

// NewMenu creates a new menu instance
func NewMenu(display DisplayHandler, input UserInputHandler, factory ProcessorFactory) *Menu {
	return &Menu{
		display: display,
		input:   input,
		factory: factory,
	}
}

// Run executes the main menu loop
func (m *Menu) Run() error {
	m.display.ShowWelcome()

	for {
		m.display.ShowMenu()

		choice, err := m.input.GetChoice()
		if err != nil {
			m.display.ShowError(err)
			continue
		}

		if choice == OptionExit {
			m.display.ShowGoodbye()
			return nil
		}

		if err := m.processChoice(choice); err != nil {
			m.display.ShowError(err)
		}
	}
}

// processChoice handles the user's menu choice
func (m *Menu) processChoice(choice int) error {
	processor, err := m.factory.CreateProcessor(choice)
	if err != nil {
		return err
	}

	if dhModer, ok := m.input.(interface{ SetDHMode(bool) }); ok {
		dhModer.SetDHMode(choice == OptionX25519 || choice == OptionDH)
	}

	operation := GetDefaultOperation(choice)
	if !GetSkipOperationOptions()[choice] {
		m.display.ShowOperationPrompt()
		operation, err = m.input.GetOperation()
		if err != nil {
			return err
		}
	}

	// Show prompt for user input
	m.display.ShowMessage("")

	// Get text input from user
	text, err := m.input.GetText()
	if err != nil {
		return err
	}

	// Show the message being processed
	m.display.ShowProcessingMessage(text)

	result, steps, err := m.handlerFor(choice).Handle(processor, text, operation)
	if err != nil {
		return err
	}

	m.display.ShowResult(result, steps)
	return nil
}

// handlerFor picks the algorithm handler responsible for the given menu
// choice. HMAC and PBKDF prompt for their own algorithm before running;
// every other processor runs as configured by the factory.
func (m *Menu) handlerFor(choice int) AlgorithmHandler {
	switch choice {
	case OptionHMAC:
		return NewHMACHandler(m.display, m.input)
	case OptionPBKDF:
		return NewPBKDFHandler(m.display, m.input)
	default:
		return NewDefaultHandler(m.display, m.input)
	}
}
