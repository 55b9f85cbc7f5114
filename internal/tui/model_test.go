package tui_test

import (
	"errors"
	"io/fs"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/joe/fstour/internal/demo"
	"github.com/joe/fstour/internal/tui"
	"github.com/joe/fstour/internal/tui/shared"
	pkgerrors "github.com/joe/fstour/pkg/errors"
)

var _ = Describe("Model", func() {
	var (
		bridge   *shared.EventBridge
		model    tui.Model
		canceled bool
	)

	send := func(msg tea.Msg) tea.Cmd {
		updated, cmd := model.Update(msg)
		model = updated.(tui.Model)

		return cmd
	}

	event := func(e demo.Event) tea.Cmd {
		return send(shared.RunnerEventMsg{Event: e})
	}

	BeforeEach(func() {
		canceled = false
		bridge = shared.NewEventBridge()
		DeferCleanup(bridge.Close)

		steps, err := demo.SelectSteps([]string{"mkdir", "echo", "rmdir"})
		Expect(err).NotTo(HaveOccurred())

		model = tui.NewModel("out", steps, bridge, func() { canceled = true })
	})

	Describe("initial state", func() {
		It("lists every step as pending", func() {
			Expect(model.Rows()).To(HaveLen(3))
			Expect(model.Rows()).To(HaveEach(HaveField("State", tui.StatePending)))
			Expect(model.Rows()[0].Name).To(Equal("mkdir"))
		})

		It("starts the spinner and listens to the bridge", func() {
			Expect(model.Init()).NotTo(BeNil())
		})

		It("shows step descriptions and the cancel hint", func() {
			view := model.View()
			Expect(view).To(ContainSubstring("mkdir"))
			Expect(view).To(ContainSubstring("q: cancel"))
		})
	})

	Describe("runner events", func() {
		It("marks a started step as running and keeps listening", func() {
			cmd := event(demo.StepStarted{Index: 0, Total: 3, Name: "mkdir"})

			Expect(cmd).NotTo(BeNil())
			Expect(model.Rows()[0].State).To(Equal(tui.StateRunning))
		})

		It("records the summary of a successful step", func() {
			event(demo.StepStarted{Index: 0, Name: "mkdir"})
			event(demo.StepSucceeded{Index: 0, Name: "mkdir", Summary: "created out/a", Duration: 3 * time.Millisecond})

			row := model.Rows()[0]
			Expect(row.State).To(Equal(tui.StateSucceeded))
			Expect(row.Detail).To(Equal("created out/a"))
			Expect(model.View()).To(ContainSubstring("created out/a"))
			Expect(model.View()).To(ContainSubstring("3ms"))
		})

		It("records the failure kind and a suggestion", func() {
			err := pkgerrors.New("mkdir", "out/a", fs.ErrExist)
			event(demo.StepFailed{Index: 0, Name: "mkdir", Err: err, Kind: pkgerrors.KindOf(err)})

			row := model.Rows()[0]
			Expect(row.State).To(Equal(tui.StateFailed))
			Expect(row.Detail).To(ContainSubstring("already exists"))
			Expect(row.Suggestion).NotTo(BeEmpty())
		})

		It("shows skip reasons", func() {
			event(demo.StepSkipped{Index: 2, Name: "rmdir", Reason: "an earlier step failed"})

			Expect(model.Rows()[2].State).To(Equal(tui.StateSkipped))
			Expect(model.View()).To(ContainSubstring("skipped: an earlier step failed"))
		})

		It("ignores events for unknown rows", func() {
			event(demo.StepStarted{Index: 7, Name: "ghost"})

			Expect(model.Rows()).To(HaveEach(HaveField("State", tui.StatePending)))
		})

		It("quits with the result when the run completes", func() {
			result := &demo.RunResult{Succeeded: 2, Failed: 1}
			cmd := event(demo.RunComplete{Result: result})

			Expect(model.Result()).To(BeIdenticalTo(result))
			Expect(cmd).NotTo(BeNil())
			Expect(cmd()).To(Equal(tea.Quit()))
			Expect(model.View()).To(ContainSubstring("2 succeeded, 1 failed, 0 skipped"))
		})

		It("reports a workspace that could not be prepared", func() {
			event(demo.RunComplete{Result: &demo.RunResult{PrepareErr: errors.New("root is a file")}})

			Expect(model.View()).To(ContainSubstring("could not prepare the workspace: root is a file"))
		})

		It("quits when the bridge closes", func() {
			cmd := send(shared.BridgeClosedMsg{})

			Expect(cmd()).To(Equal(tea.Quit()))
		})
	})

	Describe("step output", func() {
		It("collects lines into the activity log", func() {
			send(shared.OutputLineMsg{Level: "print", Text: "1: Lorem ipsum dolor sit amet,"})
			send(shared.OutputLineMsg{Level: "print", Text: "2: consectetur adipiscing elit,"})

			Expect(model.Output()).To(HaveLen(2))
			Expect(model.View()).To(ContainSubstring("Output"))
			Expect(model.View()).To(ContainSubstring("2: consectetur"))
		})

		It("keeps a bounded history", func() {
			for range 500 {
				send(shared.OutputLineMsg{Text: "line"})
			}

			Expect(len(model.Output())).To(BeNumerically("<=", 200))
		})
	})

	Describe("keys", func() {
		It("cancels the run on the first q and quits on the second", func() {
			cmd := send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

			Expect(cmd).To(BeNil())
			Expect(canceled).To(BeTrue())
			Expect(model.Canceling()).To(BeTrue())
			Expect(model.View()).To(ContainSubstring("canceling"))

			cmd = send(tea.KeyMsg{Type: tea.KeyCtrlC})
			Expect(cmd()).To(Equal(tea.Quit()))
		})

		It("quits immediately once the run is over", func() {
			event(demo.RunComplete{Result: &demo.RunResult{}})

			cmd := send(tea.KeyMsg{Type: tea.KeyEsc})
			Expect(cmd()).To(Equal(tea.Quit()))
			Expect(canceled).To(BeFalse())
		})

		It("ignores other keys", func() {
			Expect(send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})).To(BeNil())
			Expect(canceled).To(BeFalse())
		})
	})
})
