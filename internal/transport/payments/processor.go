// Package payments сверяет незавершенные пополнения и выводы с платежным шлюзом.
package payments

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/fsdevblog/village-connect/internal/domain"
	"github.com/fsdevblog/village-connect/internal/service"
	"github.com/fsdevblog/village-connect/internal/transport/payments/client"
	"github.com/sirupsen/logrus"
)

const (
	defaultServiceTimeout         = 3 * time.Second
	defaultAPITimeout             = 10 * time.Second
	defaultIdleDelay              = 2 * time.Second
	defaultIdleJitter             = time.Second
	defaultLimitPerIteration uint = 100
	defaultPaymentWorkers    uint = 10
)

var ErrNoTransactions = errors.New("no pending transactions")

// Processor опрашивает шлюз о статусах платежей и передает итоговые статусы в сервисный слой.
type Processor struct {
	client            Client
	svs               Servicer
	l                 *logrus.Entry
	limitPerIteration uint
	workers           uint
	idleDelay         time.Duration
	idleJitter        time.Duration
	// cursor id последней транзакции предыдущей страницы, 0 - начать с начала.
	cursor int64
}

// New создает процессор сверки со шлюзом по адресу gatewayURL.
func New(svs Servicer, gatewayURL string, l *logrus.Logger) *Processor {
	return &Processor{
		svs:    svs,
		client: client.New(gatewayURL),
		l: l.WithFields(logrus.Fields{
			"component": "payments",
			"module":    "processor",
		}),
		limitPerIteration: defaultLimitPerIteration,
		workers:           defaultPaymentWorkers,
		idleDelay:         defaultIdleDelay,
		idleJitter:        defaultIdleJitter,
	}
}

// SetLimitPerIteration кол-во транзакций, обрабатываемых за одну итерацию.
func (p *Processor) SetLimitPerIteration(limit uint) *Processor {
	if limit > 0 {
		p.limitPerIteration = limit
	}
	return p
}

// SetWorkers кол-во воркеров, параллельно опрашивающих шлюз.
func (p *Processor) SetWorkers(workers uint) *Processor {
	if workers > 0 {
		p.workers = workers
	}
	return p
}

// Run запускает сверку в бесконечном цикле до отмены контекста.
//
// Алгоритм работы:
//  1. В каждой итерации через сервисный слой запрашивается следующая страница pending транзакций шлюза
//     (не больше limitPerIteration, id больше курсора). После неполной страницы курсор сбрасывается,
//     поэтому зависшие у шлюза транзакции не заслоняют более новые.
//  2. Транзакции раздаются workers воркерам, каждый опрашивает шлюз.
//  3. Итоговые статусы (SUCCEEDED/FAILED) одним вызовом уходят в сервисный слой. PENDING и ошибки
//     пропускаются и будут запрошены в следующих итерациях.
//
// Если итерация ничего не сверила и страницы закончились, цикл засыпает на idleDelay со случайной добавкой.
func (p *Processor) Run(ctx context.Context) {
	p.l.WithFields(logrus.Fields{
		"limitPerIteration": p.limitPerIteration,
		"workers":           p.workers,
	}).Info("Starting")

	for {
		if ctx.Err() != nil {
			p.l.Info("Got stop signal, exiting...")
			return
		}

		reconciled, err := p.process(ctx)
		if err != nil && !errors.Is(err, ErrNoTransactions) && ctx.Err() == nil {
			p.l.WithError(err).Error("process error")
		}
		if err == nil && (reconciled > 0 || p.cursor > 0) {
			continue
		}

		select {
		case <-ctx.Done():
			p.l.Info("Got stop signal, exiting...")
			return
		case <-time.After(p.idle()):
		}
	}
}

func (p *Processor) idle() time.Duration {
	if p.idleJitter <= 0 {
		return p.idleDelay
	}
	return p.idleDelay + rand.N(p.idleJitter) //nolint:gosec
}

// process выполняет одну итерацию сверки и возвращает кол-во переданных в сервис итоговых статусов.
// Возвращает ErrNoTransactions если сверять нечего.
func (p *Processor) process(ctx context.Context) (int, error) {
	transactions, err := p.produce(ctx)
	if err != nil {
		return 0, fmt.Errorf("process: %w", err)
	}

	results := p.runWorkers(ctx, transactions)

	updates := make([]service.ReconcileArgs, 0, len(results))
	for _, result := range results {
		if result.Error != nil || !result.Status.IsFinal() {
			continue
		}
		updates = append(updates, service.ReconcileArgs{
			Reference: result.Transaction.Reference,
			Succeeded: result.Status == client.StatusSucceeded,
		})
	}
	if len(updates) == 0 {
		return 0, nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	if updErr := p.svs.Reconcile(reqCtx, updates); updErr != nil {
		return 0, fmt.Errorf("process: %w", updErr)
	}
	p.l.WithField("count", len(updates)).Info("reconciled")
	return len(updates), nil
}

// workerResult результат опроса шлюза по одной транзакции.
type workerResult struct {
	WorkerID    uint
	Transaction *domain.Transaction
	Status      client.StatusType
	Error       error
}

// runWorkers раздает транзакции воркерам и собирает результаты (fan-out/fan-in).
func (p *Processor) runWorkers(ctx context.Context, transactions []domain.Transaction) []workerResult {
	taskCh := make(chan *domain.Transaction, len(transactions))
	for i := range transactions {
		taskCh <- &transactions[i]
	}
	close(taskCh)

	workers := min(p.workers, uint(len(transactions))) //nolint:gosec
	wg := new(sync.WaitGroup)
	wg.Add(int(workers)) //nolint:gosec

	resultCh := make(chan *workerResult, len(transactions))
	for i := range workers {
		go p.worker(ctx, wg, i+1, taskCh, resultCh)
	}
	wg.Wait()
	close(resultCh)

	results := make([]workerResult, 0, len(transactions))
	for result := range resultCh {
		l := p.l.WithFields(logrus.Fields{
			"worker":    result.WorkerID,
			"reference": result.Transaction.Reference,
		})
		if result.Error != nil {
			l.WithError(result.Error).Error("get payment status")
		} else {
			l.WithField("status", result.Status).Debug("payment status")
		}
		results = append(results, *result)
	}
	return results
}

func (p *Processor) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	workerID uint,
	taskCh <-chan *domain.Transaction,
	resultCh chan<- *workerResult,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case task, ok := <-taskCh:
			if !ok {
				return
			}
			resultCh <- p.processWorkerTask(ctx, workerID, task)
		}
	}
}

// processWorkerTask опрашивает шлюз, на 429 ждет Retry-After и повторяет запрос.
func (p *Processor) processWorkerTask(ctx context.Context, workerID uint, task *domain.Transaction) *workerResult {
	result := &workerResult{WorkerID: workerID, Transaction: task}
	for {
		reqCtx, cancel := context.WithTimeout(ctx, defaultAPITimeout)
		resp, err := p.client.PaymentStatus(reqCtx, task.Reference)
		cancel()

		if err == nil {
			result.Status = resp.Status
			return result
		}

		var tooManyReq *client.TooManyRequestError
		if !errors.As(err, &tooManyReq) {
			result.Error = err
			return result
		}
		select {
		case <-ctx.Done():
			result.Error = ctx.Err()
			return result
		case <-time.After(tooManyReq.RetryAfter):
		}
	}
}

// produce возвращает следующую страницу и сдвигает курсор. Возвращает ErrNoTransactions, если сверять нечего.
func (p *Processor) produce(ctx context.Context) ([]domain.Transaction, error) {
	produceCtx, cancel := context.WithTimeout(ctx, defaultServiceTimeout)
	defer cancel()

	transactions, err := p.svs.PendingGatewayTransactions(produceCtx, p.cursor, p.limitPerIteration)
	if err != nil {
		p.cursor = 0
		return nil, fmt.Errorf("produce: %w", err)
	}
	if uint(len(transactions)) < p.limitPerIteration {
		p.cursor = 0
	} else {
		p.cursor = transactions[len(transactions)-1].ID
	}
	if len(transactions) == 0 {
		return nil, ErrNoTransactions
	}
	return transactions, nil
}
