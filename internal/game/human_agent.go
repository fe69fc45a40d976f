package game

// HumanAgent adapts interactive prompt functions supplied by the
// presentation layer to the Agent interface. Input validation and
// re-prompting live in the prompt functions; a prompt error falls back to
// standing (or skipping the round, for bets) rather than crashing the engine.
type HumanAgent struct {
	decideFunc func(TurnView) (Decision, error)
	betFunc    func(BetView) (int, error)
}

// NewHumanAgent creates a human agent from prompt functions
func NewHumanAgent(decide func(TurnView) (Decision, error), bet func(BetView) (int, error)) *HumanAgent {
	return &HumanAgent{
		decideFunc: decide,
		betFunc:    bet,
	}
}

// Decide prompts the human for a draw/stand decision
func (h *HumanAgent) Decide(view TurnView) Decision {
	if h.decideFunc == nil {
		return Stand
	}
	decision, err := h.decideFunc(view)
	if err != nil {
		return Stand
	}
	return decision
}

// ChooseBet prompts the human for a bet
func (h *HumanAgent) ChooseBet(view BetView) int {
	if h.betFunc == nil {
		return 0
	}
	bet, err := h.betFunc(view)
	if err != nil {
		return 0
	}
	return bet
}
