// Package orchestrator оборачивает задачу в контур супервизии.
//
// Последовательность одного вызова:
//  1. Гейт рабочих дней (если настроен) — может снять запуск без сбоя
//  2. Тайминг и попытки через retry.Controller
//  3. Отправка статуса (всегда, независимо от исхода)
//  4. Уведомление о сбое (только после исчерпания попыток,
//     строго после отправки статуса)
//  5. Лог общей продолжительности
//  6. Результат задачи либо nil, если все попытки упали
//
// Терминальная ошибка по умолчанию подавляется (log-and-continue);
// поведение управляется флагом Config.PropagateOnExhaustion.
package orchestrator
